//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/file-helpers/internal/cli"
	"github.com/joe/file-helpers/internal/config"
	"github.com/joe/file-helpers/internal/logger"
	"github.com/joe/file-helpers/pkg/filehelpers"
	"github.com/joe/file-helpers/pkg/filesystem"
)

type harness struct {
	app    *cli.App
	mock   *filesystem.MockFileSystem
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newHarness(stdin string) *harness {
	mock := filesystem.NewMockFileSystem()
	h := &harness{
		mock:   mock,
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}

	h.app = &cli.App{
		Stdin:  strings.NewReader(stdin),
		Stdout: h.stdout,
		Stderr: h.stderr,
		Log:    logger.Nop(),
		Connect: func(_ context.Context, paths ...string) (*filesystem.Session, error) {
			return &filesystem.Session{FS: mock, Paths: paths}, nil
		},
	}

	return h
}

func (h *harness) run(t *testing.T, args ...string) int {
	t.Helper()

	cfg, err := config.Parse(args, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("failed to parse %v: %v", args, err)
	}

	return h.app.Run(context.Background(), cfg)
}

func TestRun_NoCommandFailsWithoutConnecting(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	h := newHarness("")
	connected := false
	h.app.Connect = func(_ context.Context, paths ...string) (*filesystem.Session, error) {
		connected = true
		return &filesystem.Session{FS: h.mock, Paths: paths}, nil
	}

	g.Expect(h.app.Run(context.Background(), &config.Config{})).Should(Equal(cli.ExitFailure))
	g.Expect(connected).Should(BeFalse())
	g.Expect(h.stderr.String()).Should(ContainSubstring(config.ErrNoCommand.Error()))
}

func TestRun_SessionWithoutPathsFails(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	h := newHarness("")
	h.app.Connect = func(context.Context, ...string) (*filesystem.Session, error) {
		return &filesystem.Session{FS: h.mock}, nil
	}

	cfg, err := config.Parse([]string{"ls", "/"}, &bytes.Buffer{})
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(h.app.Run(context.Background(), cfg)).Should(Equal(cli.ExitFailure))
}

func TestRun_List(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	h := newHarness("")
	h.mock.AddFile("/data/b.txt", nil)
	h.mock.AddFile("/data/a.txt", nil)

	g.Expect(h.run(t, "ls", "/data")).Should(Equal(cli.ExitOK))
	g.Expect(strings.Fields(h.stdout.String())).Should(ConsistOf("a.txt", "b.txt"))
}

func TestRun_ListMissingDirectoryFails(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	h := newHarness("")

	g.Expect(h.run(t, "ls", "/missing")).Should(Equal(cli.ExitFailure))
	g.Expect(h.stderr.String()).Should(ContainSubstring("Error:"))
	g.Expect(h.stdout.String()).Should(BeEmpty())
}

func TestRun_CatAndWrite(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	h := newHarness("hello from stdin")
	h.mock.AddDir("/out")

	g.Expect(h.run(t, "write", "/out/greeting.txt")).Should(Equal(cli.ExitOK))

	stored, err := h.mock.GetFile("/out/greeting.txt")
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(string(stored)).Should(Equal("hello from stdin"))

	g.Expect(h.run(t, "cat", "/out/greeting.txt")).Should(Equal(cli.ExitOK))
	g.Expect(h.stdout.String()).Should(Equal("hello from stdin"))
}

func TestRun_WriteFromLocalFile(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	src := filepath.Join(t.TempDir(), "src.bin")
	g.Expect(os.WriteFile(src, []byte{0x00, 0xff}, 0o600)).Should(Succeed())

	h := newHarness("")
	h.mock.AddDir("/out")

	g.Expect(h.run(t, "write", "--from", src, "/out/copy.bin")).Should(Equal(cli.ExitOK))

	stored, err := h.mock.GetFile("/out/copy.bin")
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(stored).Should(Equal([]byte{0x00, 0xff}))
}

func TestRun_CatMissingFileSuggests(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	h := newHarness("")

	g.Expect(h.run(t, "cat", "/nope.txt")).Should(Equal(cli.ExitFailure))
	g.Expect(h.stderr.String()).Should(ContainSubstring("can't find file"))
	g.Expect(h.stderr.String()).Should(ContainSubstring("/nope.txt"))
}

func TestRun_WriteIntoMissingDirectoryFails(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	h := newHarness("x")

	g.Expect(h.run(t, "write", "/missing/out.txt")).Should(Equal(cli.ExitFailure))
	g.Expect(h.stderr.String()).Should(ContainSubstring("can't open file"))
}

func TestRun_MatchCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"match", []string{"match", "/models", ".tflite"}, []string{"/models/top.tflite"}},
		{"match-top", []string{"match-top", "/models", ".tflite"}, []string{"/models/face/face.tflite"}},
		{"glob", []string{"glob", "/models", "*.{tflite,txt}"}, []string{"/models/notes.txt", "/models/top.tflite"}},
		{"find", []string{"find", "/models", ".tflite"}, []string{"/models/face/face.tflite", "/models/top.tflite"}},
		{"no matches", []string{"match", "/missing", ".tflite"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			h := newHarness("")
			h.mock.AddFile("/models/top.tflite", nil)
			h.mock.AddFile("/models/notes.txt", nil)
			h.mock.AddFile("/models/face/face.tflite", nil)

			g.Expect(h.run(t, tt.args...)).Should(Equal(cli.ExitOK))

			got := strings.Fields(h.stdout.String())
			if tt.want == nil {
				g.Expect(got).Should(BeEmpty())
				return
			}

			g.Expect(got).Should(ConsistOf(tt.want))
		})
	}
}

func TestRun_InvalidGlobFails(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	h := newHarness("")
	h.mock.AddDir("/models")

	g.Expect(h.run(t, "glob", "/models", "[")).Should(Equal(cli.ExitFailure))
	g.Expect(h.stderr.String()).Should(ContainSubstring("invalid pattern"))
}

func TestRun_ExistsAndMkdir(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	h := newHarness("")

	g.Expect(h.run(t, "exists", "/a/b/c")).Should(Equal(cli.ExitFailure))
	g.Expect(h.stderr.String()).Should(ContainSubstring("the path does not exist"))

	g.Expect(h.run(t, "mkdir", "/a/b/c")).Should(Equal(cli.ExitOK))
	g.Expect(h.run(t, "exists", "/a/b/c")).Should(Equal(cli.ExitOK))
	g.Expect(h.stdout.String()).Should(BeEmpty())
}

func TestRun_Browse(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	h := newHarness("")

	var browsed string

	h.app.Browse = func(fsys filesystem.FileSystem, helpers *filehelpers.Helpers, dir string) error {
		g.Expect(fsys).Should(BeIdenticalTo(h.mock))
		g.Expect(helpers).ShouldNot(BeNil())

		browsed = dir

		return nil
	}

	g.Expect(h.run(t, "browse", "/srv")).Should(Equal(cli.ExitOK))
	g.Expect(browsed).Should(Equal("/srv"))
}

func TestRun_ConnectFailure(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	h := newHarness("")
	h.app.Connect = func(context.Context, ...string) (*filesystem.Session, error) {
		return nil, errors.New("SSH connection failed: dial tcp: connection refused")
	}

	g.Expect(h.run(t, "ls", "sftp://joe@nas/data")).Should(Equal(cli.ExitFailure))
	g.Expect(h.stderr.String()).Should(ContainSubstring("connection refused"))
	g.Expect(h.stderr.String()).Should(ContainSubstring("SSH"))
}

func TestNew_DefaultsToProcessStreams(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	app := cli.New(logger.Nop(), nil, nil)

	g.Expect(app.Connect).ShouldNot(BeNil())
	g.Expect(app.Stdout).Should(BeIdenticalTo(os.Stdout))
	g.Expect(app.Stderr).Should(BeIdenticalTo(os.Stderr))
}

func TestRun_LocalSessionThroughDefaultConnect(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	dir := t.TempDir()
	g.Expect(os.WriteFile(filepath.Join(dir, "model.tflite"), nil, 0o600)).Should(Succeed())

	var stdout bytes.Buffer

	app := cli.New(logger.Nop(), nil, nil)
	app.Stdout = &stdout
	app.Stderr = &bytes.Buffer{}

	cfg, err := config.Parse([]string{"match", dir, ".tflite"}, &bytes.Buffer{})
	g.Expect(err).ShouldNot(HaveOccurred())

	g.Expect(app.Run(context.Background(), cfg)).Should(Equal(cli.ExitOK))
	g.Expect(strings.TrimSpace(stdout.String())).Should(Equal(filepath.Join(dir, "model.tflite")))
}
