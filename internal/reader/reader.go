package reader

import (
	"bufio"
	"bytes"
	"io"
	"io/ioutil"
)

// Read reads all stuff coming from r as is.
func Read(r io.Reader) ([]byte, error) {
	return ioutil.ReadAll(r)
}

// ReadLines reads r line by line and joins the lines without separators, so
// wrapped base64 text becomes a single line.
func ReadLines(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	var result []string
	for scanner.Scan() {
		result = append(result, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return concat(result), nil
}

func concat(s []string) string {
	var buffer bytes.Buffer
	for _, v := range s {
		buffer.WriteString(v)
	}
	return buffer.String()
}
