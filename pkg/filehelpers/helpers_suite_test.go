package filehelpers_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestFileHelpers(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "FileHelpers Suite")
}
