// Package buildinfo holds values compiled into the binary with
//
//	go build -ldflags "-X github.com/st-little/anshin-meshi/internal/buildinfo.DeploymentID=..."
//
// None of them are read at runtime.
package buildinfo

var (
	// Version is the application version shown in the about dialog.
	Version = "0.1.0"
	// APIBase is the Apps Script macro root the deployment lives under.
	APIBase = "https://script.google.com/macros/s"
	// DeploymentID identifies the spreadsheet-backed script deployment.
	DeploymentID = ""
	// APIVersion is sent as the v query parameter, prefixed with "v".
	APIVersion = "1"
	// RepositoryURL links to the source repository.
	RepositoryURL = "https://github.com/st-little/anshin-meshi"
)
