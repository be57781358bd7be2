package service

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"jiaming2012/payout-report/models"
)

const (
	Delimiter = ","

	maxLineSize = 1024 * 1024

	// RemotePrefix marks an input path that lives on the configured sftp server.
	RemotePrefix = "sftp:"
)

type Opener interface {
	Open(path string) (io.ReadCloser, error)
}

type OpenerFunc func(path string) (io.ReadCloser, error)

func (f OpenerFunc) Open(path string) (io.ReadCloser, error) {
	return f(path)
}

type LocalFiles struct{}

func (LocalFiles) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Sources routes sftp: paths to Remote and everything else to Local.
type Sources struct {
	Local  Opener
	Remote Opener
}

func IsRemote(path string) bool {
	return strings.HasPrefix(path, RemotePrefix)
}

func (s Sources) Open(path string) (io.ReadCloser, error) {
	if !IsRemote(path) {
		if s.Local == nil {
			return LocalFiles{}.Open(path)
		}
		return s.Local.Open(path)
	}

	if s.Remote == nil {
		return nil, fmt.Errorf("no sftp server configured for %s", path)
	}

	return s.Remote.Open(strings.TrimPrefix(path, RemotePrefix))
}

// ReadRecords splits each trimmed line on Delimiter and zips the values with
// the header positionally. Quotes have no special meaning.
func ReadRecords(r io.Reader) (models.Records, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read header: %w", err)
		}
		return nil, nil
	}

	headers := strings.Split(strings.TrimSpace(scanner.Text()), Delimiter)

	var records models.Records
	line := 1
	for scanner.Scan() {
		line++

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		values := strings.Split(text, Delimiter)
		if len(values) != len(headers) {
			log.Debugf("line %d has %d values for %d headers, zipping positionally", line, len(values), len(headers))
		}

		record := make(models.Record, len(headers))
		for i, header := range headers {
			if i >= len(values) {
				break
			}
			record[header] = values[i]
		}

		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read line %d: %w", line+1, err)
	}

	return records, nil
}

func ReadRecordsFile(opener Opener, path string) (models.Records, error) {
	f, err := opener.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("ReadRecordsFile::%s: %w", path, err)
	}

	log.WithField("file", path).Debugf("loaded %d records", len(records))

	return records, nil
}

// LoadRecords concatenates the records of every path, in argument order.
func LoadRecords(opener Opener, paths []string) (models.Records, error) {
	var all models.Records

	for _, path := range paths {
		records, err := ReadRecordsFile(opener, path)
		if err != nil {
			return nil, err
		}

		all = append(all, records...)
	}

	return all, nil
}
