package report

import (
	"encoding/json"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/wal"
)

// Journal appends records to a write-ahead log directory.
type Journal struct {
	log  *wal.Log
	next uint64
}

// OpenJournal opens or creates the journal in dir. New records follow the
// existing ones.
func OpenJournal(dir string) (*Journal, error) {
	opts := *wal.DefaultOptions
	opts.LogFormat = wal.JSON

	log, err := wal.Open(dir, &opts)
	if err != nil {
		return nil, err
	}
	last, err := log.LastIndex()
	if err != nil {
		log.Close()
		return nil, err
	}

	return &Journal{log: log, next: last + 1}, nil
}

// Emit
func (j *Journal) Emit(r Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	if err := j.log.Write(j.next, data); err != nil {
		return err
	}
	j.next++
	return nil
}

// Len returns the number of records in the journal.
func (j *Journal) Len() (int, error) {
	first, err := j.log.FirstIndex()
	if err != nil || first == 0 {
		return 0, err
	}
	return int(j.next - first), nil
}

// Records reads the journal back in write order.
func (j *Journal) Records() ([]Record, error) {
	first, err := j.log.FirstIndex()
	if err != nil || first == 0 {
		return nil, err
	}

	records := make([]Record, 0, j.next-first)
	for i := first; i < j.next; i++ {
		data, err := j.log.Read(i)
		if err != nil {
			return nil, err
		}
		records = append(records, parseRecord(data))
	}
	return records, nil
}

// Close
func (j *Journal) Close() error {
	return j.log.Close()
}

// parseRecord
func parseRecord(data []byte) Record {
	res := gjson.ParseBytes(data)

	var samples []string
	for _, s := range res.Get("samples").Array() {
		samples = append(samples, s.String())
	}

	return Record{
		RunID:    res.Get("run_id").String(),
		Label:    res.Get("label").String(),
		Policy:   res.Get("policy").String(),
		From:     int(res.Get("from").Int()),
		Capacity: int(res.Get("capacity").Int()),
		Count:    int(res.Get("count").Int()),
		Resizes:  int(res.Get("resizes").Int()),
		Elapsed:  time.Duration(res.Get("elapsed").Int()),
		Memory:   int(res.Get("memory").Int()),
		Samples:  samples,
	}
}
