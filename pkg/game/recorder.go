package game

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"

	"github.com/trytobebee/gridsnake/pkg/config"
)

// StepRecord is one line of a step trace
type StepRecord struct {
	SessionID  string    `json:"session"`
	Step       int       `json:"step"`
	Heading    Heading   `json:"heading"`
	Head       Point     `json:"head"`
	Tail       []Point   `json:"tail"`
	Food       *Point    `json:"food,omitempty"`
	Collision  Collision `json:"collision"`
	FoodPlaced bool      `json:"foodPlaced,omitempty"`
	Time       time.Time `json:"time"`
}

func newStepRecord(session string, step int, h Heading, c Collision, placed bool, s State) StepRecord {
	rec := StepRecord{
		SessionID:  session,
		Step:       step,
		Heading:    h,
		Head:       s.Head,
		Tail:       s.Tail.Points(),
		Collision:  c,
		FoodPlaced: placed,
		Time:       time.Now(),
	}
	if s.HasFood {
		food := s.Food
		rec.Food = &food
	}
	return rec
}

// State rebuilds the board state captured by the record
func (r StepRecord) State() State {
	s := State{
		Head:    r.Head,
		Tail:    NewTail(r.Tail...),
		Heading: r.Heading,
	}
	if r.Food != nil {
		s.Food, s.HasFood = *r.Food, true
	}
	return s
}

// Recorder writes step records as JSON lines from a background goroutine
type Recorder struct {
	sessionID  string
	closer     io.Closer
	writer     *bufio.Writer
	recordChan chan StepRecord
	wg         sync.WaitGroup
	mu         sync.Mutex
	closed     bool
	dropped    int
}

// NewRecorder creates a recorder writing to dir.
// Filename format: trace_{sessionID}_{timestamp}.jsonl
func NewRecorder(dir string) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create records dir: %w", err)
	}

	sessionID := uuid.NewString()
	filename := fmt.Sprintf("trace_%s_%d.jsonl", sessionID, time.Now().Unix())
	f, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return nil, fmt.Errorf("create record file: %w", err)
	}
	glog.Infof("recording session %s to %s", sessionID, f.Name())
	return newRecorder(f, f, sessionID), nil
}

func newRecorder(w io.Writer, closer io.Closer, sessionID string) *Recorder {
	r := &Recorder{
		sessionID:  sessionID,
		closer:     closer,
		writer:     bufio.NewWriter(w),
		recordChan: make(chan StepRecord, config.RecordQueueSize),
	}
	r.wg.Add(1)
	go r.writeLoop()
	return r
}

// SessionID identifies the trace
func (r *Recorder) SessionID() string {
	return r.sessionID
}

// RecordStep queues a record to be written. Non-blocking (drops if full).
func (r *Recorder) RecordStep(rec StepRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}

	select {
	case r.recordChan <- rec:
	default:
		r.dropped++
	}
}

// Dropped returns how many records were discarded because the queue was full
func (r *Recorder) Dropped() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dropped
}

// Close flushes pending records and closes the underlying file
func (r *Recorder) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	close(r.recordChan)
	dropped := r.dropped
	r.mu.Unlock()

	r.wg.Wait()
	if dropped > 0 {
		glog.Warningf("recorder %s dropped %d records", r.sessionID, dropped)
	}
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

func (r *Recorder) writeLoop() {
	defer r.wg.Done()

	encoder := json.NewEncoder(r.writer)
	for rec := range r.recordChan {
		if err := encoder.Encode(rec); err != nil {
			glog.Errorf("record step %d: %v", rec.Step, err)
		}
	}
	if err := r.writer.Flush(); err != nil {
		glog.Errorf("flush trace: %v", err)
	}
}

// ReadTrace decodes a trace written by a Recorder
func ReadTrace(rd io.Reader) ([]StepRecord, error) {
	var records []StepRecord
	scanner := bufio.NewScanner(rd)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var rec StepRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			return records, fmt.Errorf("trace line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return records, fmt.Errorf("read trace: %w", err)
	}
	return records, nil
}
