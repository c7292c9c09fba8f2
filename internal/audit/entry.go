package audit

// Entry is one line in the hash-chained JSONL trail of administrative
// mutations. All fields are scalars so json.Marshal order is fixed and the
// line hash is reproducible.
type Entry struct {
	Timestamp string `json:"ts"`
	Actor     string `json:"actor"`
	Operation string `json:"operation"`
	Target    string `json:"target,omitempty"`
	Detail    string `json:"detail,omitempty"`
	Result    string `json:"result"`
	PrevHash  string `json:"prev_hash"`
}

// Results recorded in Entry.Result.
const (
	ResultOK     = "ok"
	ResultFailed = "failed"
)

// Recorder is implemented by *Log and by Discard.
type Recorder interface {
	Record(Entry) error
}

type discard struct{}

func (discard) Record(Entry) error { return nil }

// Discard drops every entry.
var Discard Recorder = discard{}
