package meta

const (
	// CLIName is the name of the command line tool
	CLIName = "atlasctl"
	// ProductName is the display name of the product the CLI administers
	ProductName = "Atlas Banking"
)
