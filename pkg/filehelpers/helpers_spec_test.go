package filehelpers_test

import (
	"io"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/sftp"

	pkgerrors "github.com/joe/file-helpers/pkg/errors"
	"github.com/joe/file-helpers/pkg/filehelpers"
	"github.com/joe/file-helpers/pkg/filesystem"
)

// backend pairs a file system with a root directory the specs may write under.
type backend struct {
	fs   filesystem.FileSystem
	root string
}

// sharedBehaviors runs the same specs against every FileSystem implementation.
func sharedBehaviors(newBackend func() backend) {
	var (
		b       backend
		helpers *filehelpers.Helpers
	)

	BeforeEach(func() {
		b = newBackend()
		helpers = filehelpers.New(b.fs)
	})

	Describe("a project tree", func() {
		var models string

		BeforeEach(func() {
			models = b.fs.Join(b.root, "models")
			Expect(helpers.RecursivelyCreateDir(b.fs.Join(models, "face"))).To(Succeed())
			Expect(helpers.RecursivelyCreateDir(b.fs.Join(models, "hand"))).To(Succeed())

			for _, file := range []string{
				b.fs.Join(models, "face", "detector.tflite"),
				b.fs.Join(models, "face", "labels.txt"),
				b.fs.Join(models, "hand", "landmarks.tflite"),
				b.fs.Join(models, "index.txt"),
			} {
				Expect(helpers.SetContents(file, []byte("payload"))).To(Succeed())
			}
		})

		It("reports created directories as existing", func() {
			Expect(helpers.Exists(b.fs.Join(models, "face"))).To(Succeed())
		})

		It("matches by suffix in one directory", func() {
			got, err := helpers.MatchFileTypeInDirectory(models, ".txt")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(ConsistOf(b.fs.Join(models, "index.txt")))
		})

		It("matches one level down", func() {
			got, err := helpers.MatchInTopSubdirectories(models, ".tflite")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(ConsistOf(
				b.fs.Join(models, "face", "detector.tflite"),
				b.fs.Join(models, "hand", "landmarks.tflite"),
			))
		})

		It("matches glob patterns", func() {
			got, err := helpers.MatchPatternInDirectory(b.fs.Join(models, "face"), "*.{tflite,bin}")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(ConsistOf(b.fs.Join(models, "face", "detector.tflite")))
		})

		It("finds files at any depth", func() {
			got, err := helpers.FindRecursively(b.root, ".txt")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal([]string{
				b.fs.Join(models, "face", "labels.txt"),
				b.fs.Join(models, "index.txt"),
			}))
		})

		It("reads back what was written", func() {
			got, err := helpers.GetContents(b.fs.Join(models, "index.txt"), true)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(got)).To(Equal("payload"))
		})
	})

	Describe("missing paths", func() {
		var missing string

		BeforeEach(func() {
			missing = b.fs.Join(b.root, "missing")
		})

		It("are NotFound for Exists", func() {
			Expect(pkgerrors.IsNotFound(helpers.Exists(missing))).To(BeTrue())
		})

		It("are NotFound for GetContents", func() {
			_, err := helpers.GetContents(missing, false)
			Expect(pkgerrors.IsNotFound(err)).To(BeTrue())
		})

		It("are InvalidArgument for SetContents under them", func() {
			err := helpers.SetContents(b.fs.Join(missing, "out.txt"), []byte("x"))
			Expect(pkgerrors.IsInvalidArgument(err)).To(BeTrue())
		})

		It("produce no matches", func() {
			got, err := helpers.MatchFileTypeInDirectory(missing, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeEmpty())
		})
	})
}

var _ = Describe("Helpers", func() {
	Context("over the in-memory file system", func() {
		sharedBehaviors(func() backend {
			mock := filesystem.NewMockFileSystem()
			mock.AddDir("/work")

			return backend{fs: mock, root: "/work"}
		})
	})

	Context("over the local file system", func() {
		sharedBehaviors(func() backend {
			root, err := os.MkdirTemp("", "filehelpers-spec-*")
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(os.RemoveAll, root)

			return backend{fs: filesystem.NewRealFileSystem(), root: filepath.Clean(root)}
		})
	})

	Context("over an in-memory SFTP server", func() {
		sharedBehaviors(func() backend {
			clientReader, serverWriter := io.Pipe()
			serverReader, clientWriter := io.Pipe()

			server := sftp.NewRequestServer(struct {
				io.Reader
				io.WriteCloser
			}{serverReader, serverWriter}, sftp.InMemHandler())

			go func() {
				_ = server.Serve()
			}()

			client, err := sftp.NewClientPipe(clientReader, clientWriter)
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(func() {
				_ = server.Close()
				_ = client.Close()
			})

			fs := filesystem.NewSFTPFileSystem(client)
			Expect(fs.Mkdir("/work")).To(Succeed())

			return backend{fs: fs, root: "/work"}
		})
	})
})
