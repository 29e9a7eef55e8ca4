package version

// Version is the application version, stamped into backup metadata so a
// restore can tell which writer produced the file.
const Version = "1.0.0"
