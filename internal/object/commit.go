package object

import (
	"bytes"
	"fmt"
	"strings"
)

// Commit is a snapshot reference plus history metadata: the root tree it
// points to, its ordered parents (0 = root, 1 = normal, 2+ = merge), the
// author, and the commit message.
type Commit struct {
	TreeHash     string
	ParentHashes []string
	Author       string
	Message      string
}

func (c *Commit) Kind() Kind { return KindCommit }

// Serialize implements Object. The body is a header block (tree, zero or
// more parent lines in order, author), a blank line, then the message
// verbatim — mirroring the familiar git commit object layout.
func (c *Commit) Serialize() []byte {
	var body bytes.Buffer
	fmt.Fprintf(&body, "tree %s\n", c.TreeHash)
	for _, p := range c.ParentHashes {
		fmt.Fprintf(&body, "parent %s\n", p)
	}
	fmt.Fprintf(&body, "author %s\n", c.Author)
	body.WriteByte('\n')
	body.WriteString(c.Message)
	return frame(KindCommit, body.Bytes())
}

func parseCommitBody(body []byte) (*Commit, error) {
	text := string(body)
	headerEnd := strings.Index(text, "\n\n")
	if headerEnd < 0 {
		return nil, fmt.Errorf("%w: commit missing header/message separator", ErrMalformed)
	}

	c := &Commit{Message: text[headerEnd+2:]}
	header := text[:headerEnd]
	if header != "" {
		for _, line := range strings.Split(header, "\n") {
			parts := strings.SplitN(line, " ", 2)
			if len(parts) != 2 {
				return nil, fmt.Errorf("%w: bad commit header line %q", ErrMalformed, line)
			}
			switch parts[0] {
			case "tree":
				c.TreeHash = parts[1]
			case "parent":
				c.ParentHashes = append(c.ParentHashes, parts[1])
			case "author":
				c.Author = parts[1]
			default:
				return nil, fmt.Errorf("%w: unknown commit header field %q", ErrMalformed, parts[0])
			}
		}
	}
	return c, nil
}
