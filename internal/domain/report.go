package domain

// CopyOutcome is produced once per task after it settles.
type CopyOutcome struct {
	SourcePath string
	TargetPath string
	Err        error
}

type Failure struct {
	SourcePath string
	Message    string
}

// CopyReport aggregates the settled outcomes of a full run.
// Succeeded + len(Failed) == TotalFiles always holds once a run completes.
type CopyReport struct {
	TotalFiles int
	Succeeded  int
	Failed     []Failure
}

func (r CopyReport) AllSucceeded() bool {
	return len(r.Failed) == 0
}
