package version

// Version is the Major.Minor.Patch tag from GIT, supplied
// at build time - else 'dev' as a default
var Version string = "dev"
