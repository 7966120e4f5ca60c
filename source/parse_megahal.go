package source

import (
	"bufio"
	"io"
	"strings"
)

func parseMegaHALTraining(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	var ret []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "#") {
			// It's a comment, so ignore it.
			continue
		}
		ret = append(ret, line)
	}
	return ret, sc.Err()
}
