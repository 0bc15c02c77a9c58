//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binary  = "bin/civic-server"
	mainPkg = "./cmd/server"
	appPkg  = "./internal/app"
)

// Default target when running mage without arguments.
var Default = Build

// Build builds the server binary.
func Build() error {
	mg.Deps(Generate)
	fmt.Println("Building", binary)
	return sh.Run("go", "build", "-o", binary, mainPkg)
}

// Generate regenerates the dependency injector and the Swagger docs.
func Generate() {
	mg.Deps(Wire, Swagger)
}

// Wire regenerates internal/app/wire_gen.go.
func Wire() error {
	fmt.Println("Running wire...")
	return sh.Run("wire", "gen", appPkg)
}

// Swagger regenerates cmd/server/docs from the handler annotations.
func Swagger() error {
	fmt.Println("Running swag...")
	return sh.Run("swag", "init",
		"--generalInfo", "docs.go",
		"--dir", "cmd/server,internal/adapter/inbound/http",
		"--output", "cmd/server/docs",
		"--outputTypes", "go",
		"--parseInternal",
	)
}

// Test runs all tests with the race detector.
func Test() error {
	fmt.Println("Running tests...")
	return sh.RunV("go", "test", "-race", "./...")
}

// Cover runs tests with a coverage profile.
func Cover() error {
	fmt.Println("Running tests with coverage...")
	if err := sh.RunV("go", "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func=coverage.out")
}

// Lint runs go vet and golangci-lint.
func Lint() error {
	fmt.Println("Running linters...")
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	return sh.RunV("golangci-lint", "run", "./...")
}

// Migrate applies the database schema using the local configuration.
func Migrate() error {
	mg.Deps(Build)
	return sh.RunV(binary, "migrate")
}

// Dev runs the server against the in-memory store.
func Dev() error {
	mg.Deps(Build)
	fmt.Println("Starting server with the memory store...")
	cmd := exec.Command(binary, "serve")
	cmd.Env = append(os.Environ(), "CIVIC_DATABASE_DRIVER=memory", "CIVIC_LOG_LEVEL=debug")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// CI runs vet, tests with coverage and the build.
func CI() {
	mg.SerialDeps(Lint, Cover, Build)
}

// Clean removes build artifacts.
func Clean() error {
	fmt.Println("Cleaning...")
	if err := os.RemoveAll("bin"); err != nil {
		return err
	}
	return sh.Rm("coverage.out")
}

// Install installs the code generators and linters used by the targets above.
func Install() error {
	tools := []string{
		"github.com/google/wire/cmd/wire@v0.7.0",
		"github.com/swaggo/swag/cmd/swag@v1.16.6",
		"github.com/golangci/golangci-lint/cmd/golangci-lint@latest",
	}
	for _, tool := range tools {
		fmt.Println("  Installing", tool)
		if err := sh.Run("go", "install", tool); err != nil {
			return fmt.Errorf("installing %s: %w", tool, err)
		}
	}
	return nil
}
