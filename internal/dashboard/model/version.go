package model

// NotAvailable is shown for build metadata that was not stamped into the build.
const NotAvailable = "N/A"

// VersionMetadata is fixed at build time and never changes while the process runs.
type VersionMetadata struct {
	GitHash      string `json:"git_hash"`
	CommitDate   string `json:"commit_date"`
	CommitAuthor string `json:"commit_author"`
	Version      string `json:"version"`
}

func NewVersionMetadata(gitHash, commitDate, commitAuthor, version string) VersionMetadata {
	return VersionMetadata{
		GitHash:      orNotAvailable(gitHash),
		CommitDate:   orNotAvailable(commitDate),
		CommitAuthor: orNotAvailable(commitAuthor),
		Version:      orNotAvailable(version),
	}
}

// HasGitHash reports whether a real commit hash was stamped.
func (v VersionMetadata) HasGitHash() bool {
	return v.GitHash != "" && v.GitHash != NotAvailable
}

func orNotAvailable(v string) string {
	if v == "" {
		return NotAvailable
	}
	return v
}
