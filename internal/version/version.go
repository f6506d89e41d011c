package version

// Version is the current commitedit version.
const Version = "0.1.0"
