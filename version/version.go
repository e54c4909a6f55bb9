// Package version provides shardrecover with a ready-to-use version command
// that reports versioning information passed at compile time.
//
// At build time, the variables Version and Commit can be passed as build
// flags as shown in the following example:
//
//	go build -X github.com/strangelove-ventures/shardrecover/version.Version=1.0 \
//	 -X github.com/strangelove-ventures/shardrecover/version.Commit=f0f7b7dab7e36c20b757cebce0e8f4fc5b95de60
package version

import (
	"fmt"
	"runtime"
	dbg "runtime/debug"
)

const cometBFTModule = "github.com/cometbft/cometbft"

var (
	// application's version string
	Version = ""
	// commit
	Commit = ""
)

// Info defines the application version information.
type Info struct {
	Version         string `json:"version" yaml:"version"`
	GitCommit       string `json:"commit" yaml:"commit"`
	GoVersion       string `json:"go_version" yaml:"go_version"`
	CometBFTVersion string `json:"cometbft_version,omitempty" yaml:"cometbft_version,omitempty"`
}

func NewInfo() Info {
	info := Info{
		Version:   Version,
		GitCommit: Commit,
		GoVersion: fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH),
	}

	if bi, ok := dbg.ReadBuildInfo(); ok {
		for _, dep := range bi.Deps {
			if dep.Path == cometBFTModule {
				info.CometBFTVersion = dep.Version
			}
		}
	}
	return info
}

func (vi Info) String() string {
	return fmt.Sprintf(`shardrecover: %s
git commit: %s
go version: %s
cometbft version: %s
`,
		vi.Version, vi.GitCommit, vi.GoVersion, vi.CometBFTVersion)
}
