package repo

import (
	"fmt"

	"github.com/lgulich/dotfile-manager/pkg/project"
)

// RequireIssue is a requires entry that names a project which will not be
// installed alongside the declaring one.
type RequireIssue struct {
	Project  string
	Requires string
	Reason   string
}

func (i RequireIssue) String() string {
	return fmt.Sprintf("%s requires %s, which %s", i.Project, i.Requires, i.Reason)
}

// Reasons reported by CheckRequires
const (
	ReasonMissing  = "does not exist"
	ReasonDisabled = "is disabled"
)

// CheckRequires reports requires entries of enabled projects that name a
// missing or disabled project. Declared requirements never change install
// order.
func CheckRequires(projects []*project.Project) []RequireIssue {
	byName := make(map[string]*project.Project, len(projects))
	for _, p := range projects {
		byName[p.Name()] = p
	}

	var issues []RequireIssue
	for _, p := range projects {
		if p.IsDisabled() {
			continue
		}
		for _, req := range p.Requires() {
			dep, ok := byName[req]
			switch {
			case !ok:
				issues = append(issues, RequireIssue{Project: p.Name(), Requires: req, Reason: ReasonMissing})
			case dep.IsDisabled():
				issues = append(issues, RequireIssue{Project: p.Name(), Requires: req, Reason: ReasonDisabled})
			}
		}
	}
	return issues
}

func (r *Repo) warnRequires(projects []*project.Project) {
	logger := r.logger()
	for _, issue := range CheckRequires(projects) {
		logger.Info().
			Str("project", issue.Project).
			Str("requires", issue.Requires).
			Msg(issue.Reason)
		r.printer.Warn("%s", issue)
	}
}
