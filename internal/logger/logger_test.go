//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package logger_test

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/file-helpers/internal/logger"
	"github.com/joe/file-helpers/pkg/filehelpers"
)

func TestConsoleLogger_FiltersByLevel(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var out bytes.Buffer

	log := logger.New(&out, logger.LevelWarn)
	log.Debug("hidden %d", 1)
	log.Info("hidden too")
	log.Warn("disk at %d%%", 91)
	log.Error("failed")

	g.Expect(out.String()).Should(Equal("[warn] disk at 91%\n[error] failed\n"))
}

func TestConsoleLogger_WithComponent(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var out bytes.Buffer

	var log filehelpers.Logger = logger.New(&out, logger.LevelDebug)
	log.WithComponent("filehelpers").Debug("created directory %s", "/tmp/a")
	log.Info("plain")

	g.Expect(strings.Split(strings.TrimSpace(out.String()), "\n")).Should(Equal([]string{
		"[debug] filehelpers: created directory /tmp/a",
		"[info] plain",
	}))
}

func TestConsoleLogger_NoColorForNonTerminal(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var out bytes.Buffer

	logger.New(&out, logger.LevelInfo).Error("boom")

	g.Expect(out.String()).ShouldNot(ContainSubstring("\x1b["))
}

func TestConsoleLogger_PercentInArgumentIsLiteral(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var out bytes.Buffer

	logger.New(&out, logger.LevelInfo).Info("%s", "100% done")

	g.Expect(out.String()).Should(Equal("[info] 100% done\n"))
}

func TestNop(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	log := logger.Nop()
	log.Error("nothing")
	g.Expect(log.WithComponent("x")).ShouldNot(BeNil())
}

func TestLevel_UnmarshalText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    logger.Level
		wantErr bool
	}{
		{"debug", logger.LevelDebug, false},
		{"INFO", logger.LevelInfo, false},
		{"warning", logger.LevelWarn, false},
		{" error ", logger.LevelError, false},
		{"quiet", logger.LevelQuiet, false},
		{"verbose", logger.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			level := logger.LevelInfo
			err := level.UnmarshalText([]byte(tt.input))

			if tt.wantErr {
				g.Expect(err).Should(HaveOccurred())
				g.Expect(err.Error()).Should(ContainSubstring("invalid log level"))

				return
			}

			g.Expect(err).ShouldNot(HaveOccurred())
			g.Expect(level).Should(Equal(tt.want))

			text, err := level.MarshalText()
			g.Expect(err).ShouldNot(HaveOccurred())
			g.Expect(string(text)).Should(Equal(tt.want.String()))
		})
	}
}
