package puzzlebox

// Version is the puzzlebox release.
const Version = "0.3.0"
