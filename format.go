package wordfreq

import (
	"bufio"
	"io"
	"strings"
)

// Format renders one "<count> <word>" line per entry.
func Format(list []Entry) string {
	var str strings.Builder
	for _, e := range list {
		str.WriteString(e.String())
		str.WriteByte('\n')
	}
	return str.String()
}

func WriteEntries(w io.Writer, list []Entry) error {
	ws := bufio.NewWriter(w)
	for _, e := range list {
		if _, err := ws.WriteString(e.String()); err != nil {
			return err
		}
		if err := ws.WriteByte('\n'); err != nil {
			return err
		}
	}
	return ws.Flush()
}
