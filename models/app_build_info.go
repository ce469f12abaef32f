package models

// AppBuildInfo describes the running client build. It is compared against the
// update manifest by the update checker and printed at startup.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
