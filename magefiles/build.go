//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the rockflight binary into bin/.
func (Build) Binary() error {
	out := filepath.Join(binDir, binary)
	if _, err := executeCmd("go", withArgs("build", "-o", out, mainPkg)); err != nil {
		return err
	}
	fmt.Println("Built", out)
	return nil
}

// Cross-compiles the terminal and SSH builds for linux and darwin. The
// window frontend needs cgo on those platforms and is left to native builds.
func (Build) Release() error {
	for _, goos := range []string{"linux", "darwin"} {
		for _, goarch := range []string{"amd64", "arm64"} {
			out := filepath.Join(binDir, fmt.Sprintf("%s-%s-%s", binary, goos, goarch))
			_, err := executeCmd("go",
				withArgs("build", "-trimpath", "-o", out, mainPkg),
				withEnv("GOOS="+goos, "GOARCH="+goarch),
			)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// Writes the placeholder art and collider outlines into assets/.
func (Build) Assets() error {
	_, err := executeCmd("go", withArgs("run", mainPkg, "assets", "--out", "assets"), withStream())
	return err
}
