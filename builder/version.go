package builder

// Version of the build pipeline. Stamps from another minor version are
// ignored.
const Version = "0.3.0"
