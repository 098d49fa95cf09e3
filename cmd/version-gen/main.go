package main

import (
	"VCS_Image_Dashboard/internal/versiongen"
	"VCS_Image_Dashboard/pkg/logger"
	"context"
	"time"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
)

type cli struct {
	Output   string        `help:"Path of the generated version file." default:".env.version" type:"path"`
	Repo     string        `help:"Directory of the git repository to read." default:"." type:"existingdir"`
	Timeout  time.Duration `help:"Timeout for all git commands." default:"10s"`
	LogLevel string        `help:"Log level." default:"info" enum:"debug,info,warn,error"`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("version-gen"),
		kong.Description("Writes git commit metadata to the dashboard build metadata file."),
	)

	zapLogger := logger.NewLogger(c.LogLevel).With(zap.String("service.name", "version-gen"))
	defer zapLogger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	generator := versiongen.NewGenerator(versiongen.NewExecGitRunner(c.Repo), zapLogger)
	meta := generator.Generate(ctx)
	if err := versiongen.Write(c.Output, meta); err != nil {
		zapLogger.Error("failed to write version file", zap.Error(err))
		kctx.Exit(1)
	}
	zapLogger.Info("version info generated successfully",
		zap.String("file", c.Output),
		zap.String("git_hash", meta.GitHash),
		zap.String("commit_date", meta.CommitDate),
		zap.String("commit_author", meta.CommitAuthor),
		zap.String("version", meta.Version),
	)
}
