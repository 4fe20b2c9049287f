package wavefront

import (
	"strings"

	"github.com/Roy-Fokker/simple-obj-parser/log"
)

var logger = log.New("wavefront")

// A rule consumes the remainder of a record after its keyword has been read
// and applies it to the parser state S.
type rule[S any] func(state *S, c *cursor) error

// A ruleSet maps record keywords to the rules that process them.
type ruleSet[S any] map[string]rule[S]

// Returns the record keywords recognized by the rule set.
func (rs ruleSet[S]) keywords() []string {
	out := make([]string, 0, len(rs))
	for kw := range rs {
		out = append(out, kw)
	}
	return out
}

// Run the dispatch loop until the cursor is exhausted. Records with an
// unknown keyword (including comments) are skipped up to the end of the line.
func (rs ruleSet[S]) run(state *S, c *cursor) error {
	for {
		keyword, ok := c.next()
		if !ok {
			return nil
		}

		r, exists := rs[keyword]
		if !exists {
			if !strings.HasPrefix(keyword, "#") {
				logger.Debugf(`[line %d] skipping unsupported record "%s"`, c.tokLine, keyword)
			}
			c.skipLine()
			continue
		}

		c.beginRecord()
		if err := r(state, c); err != nil {
			return err
		}
	}
}
