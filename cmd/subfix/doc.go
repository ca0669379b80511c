// Command subfix fixes the character encoding of subtitle files. It converts
// single files or whole directory trees to a target encoding, detecting the
// source encoding when it is not given, and names converted files so they
// never overwrite anything already on disk.
package main
