// golangcilintconstify package provides a plugin for golangci-lint to
// integrate the Constify analyzer. To build a custom golangci-lint binary with
// this plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// Now you will have a golangci-lint-constify binary that you can use to lint
// your Go code with the Constify analyzer.
package golangcilintconstify

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/calebzulawski/constify/pkg/constifyanalysis"
)

func init() {
	register.Plugin("constify", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return ConstifyLinter{}, nil
}

type ConstifyLinter struct{}

func (ConstifyLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{constifyanalysis.Analyzer}, nil
}

func (ConstifyLinter) GetLoadMode() string {
	return register.LoadModeSyntax
}
