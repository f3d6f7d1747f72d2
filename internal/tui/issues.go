package tui

import (
	"github.com/javiermolinar/pagetable/internal/debuglog"
	"github.com/javiermolinar/pagetable/internal/pager"
	"github.com/javiermolinar/pagetable/internal/user"
)

// issueCache memoizes validation results. Records never change once
// appended, so only records past checked need validating when the
// controller version moves.
type issueCache struct {
	version uint64
	checked int
	byIndex user.Validations
	log     *debuglog.Logger
}

func newIssueCache(log *debuglog.Logger) *issueCache {
	return &issueCache{byIndex: make(user.Validations), log: log}
}

func (c *issueCache) refresh(state pager.State) {
	if state.Version == c.version && c.checked == len(state.Records) {
		return
	}
	from := c.checked
	c.byIndex.ValidateRange(state.Records, from)
	for i := from; i < len(state.Records); i++ {
		if errs, ok := c.byIndex[i]; ok {
			c.log.Log("INVALID_ROW", map[string]any{"index": i, "errors": errs})
		}
	}
	c.checked = len(state.Records)
	c.version = state.Version
}

func (c *issueCache) get(index int) []string {
	return c.byIndex[index]
}

func (c *issueCache) count() int {
	return len(c.byIndex)
}
