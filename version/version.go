package version

// go clean && go install \
//  -ldflags "-X github.com/Phaust94/sqlite-interface/version.Version=${version}"

// Version will be the latest tag + number of commits after the tag
var Version = "unset"
