package parley

// Version is the current release of the Parley library.
const Version = "0.1.0"
