// Package versiongen stamps git metadata into the flat KEY=VALUE file read by
// the dashboard at startup.
//
// The generator never fails because of git: a missing tag falls back to "dev",
// and an unreadable repository falls back to sentinel values for every field.
package versiongen

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	UnknownValue   = "unknown"
	DefaultVersion = "dev"
	DateLayout     = "2006-01-02 15:04:05"

	HashLength = 8
)

const fileHeader = "# Auto-generated version info - DO NOT EDIT MANUALLY"

// Keys of the generated file, in the order they are written.
const (
	KeyGitHash      = "VITE_GIT_HASH"
	KeyCommitDate   = "VITE_COMMIT_DATE"
	KeyCommitAuthor = "VITE_COMMIT_AUTHOR"
	KeyVersion      = "VITE_VERSION"
)

type Metadata struct {
	GitHash      string
	CommitDate   string
	CommitAuthor string
	Version      string
}

// GitRunner runs one git subcommand and returns its trimmed stdout.
type GitRunner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

type execGitRunner struct {
	dir string
}

func (e *execGitRunner) Run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = e.dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(string(out)), nil
}

func NewExecGitRunner(dir string) GitRunner {
	return &execGitRunner{dir: dir}
}

type Generator struct {
	git    GitRunner
	logger *zap.Logger
	now    func() time.Time
}

// Generate reads the commit metadata. It always returns usable values.
func (g *Generator) Generate(ctx context.Context) Metadata {
	meta, err := g.readCommit(ctx)
	if err != nil {
		g.logger.Error("failed to read git metadata, using fallback values", zap.Error(err))
		return Metadata{
			GitHash:      UnknownValue,
			CommitDate:   g.now().Format(DateLayout),
			CommitAuthor: UnknownValue,
			Version:      DefaultVersion,
		}
	}

	tag, err := g.git.Run(ctx, "describe", "--tags", "--abbrev=0")
	if err != nil || tag == "" {
		g.logger.Info("no git tags found, using default version", zap.String("version", DefaultVersion))
		tag = DefaultVersion
	}
	meta.Version = tag
	return meta
}

func (g *Generator) readCommit(ctx context.Context) (Metadata, error) {
	hash, err := g.git.Run(ctx, "rev-parse", fmt.Sprintf("--short=%d", HashLength), "HEAD")
	if err != nil {
		return Metadata{}, err
	}
	date, err := g.git.Run(ctx, "log", "-1", "--format=%cd", "--date=format:%Y-%m-%d %H:%M:%S")
	if err != nil {
		return Metadata{}, err
	}
	author, err := g.git.Run(ctx, "log", "-1", "--format=%an")
	if err != nil {
		return Metadata{}, err
	}
	return Metadata{
		GitHash:      hash,
		CommitDate:   date,
		CommitAuthor: author,
	}, nil
}

// Encode renders the metadata in the generated file format.
func Encode(meta Metadata) []byte {
	var buf bytes.Buffer
	buf.WriteString(fileHeader + "\n")
	for _, kv := range [][2]string{
		{KeyGitHash, meta.GitHash},
		{KeyCommitDate, meta.CommitDate},
		{KeyCommitAuthor, meta.CommitAuthor},
		{KeyVersion, meta.Version},
	} {
		fmt.Fprintf(&buf, "%s=%s\n", kv[0], sanitize(kv[1]))
	}
	return buf.Bytes()
}

// sanitize keeps every value on a single line.
func sanitize(v string) string {
	return strings.Join(strings.Fields(v), " ")
}

// Write overwrites path with the encoded metadata.
func Write(path string, meta Metadata) error {
	if err := os.WriteFile(path, Encode(meta), 0o644); err != nil {
		return fmt.Errorf("versiongen.Write: %w", err)
	}
	return nil
}

func NewGenerator(git GitRunner, logger *zap.Logger) *Generator {
	return &Generator{
		git:    git,
		logger: logger,
		now:    time.Now,
	}
}
