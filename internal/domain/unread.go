package domain

// UnreadCounts holds one reader's unread totals, always derived from
// message/read-receipt rows at query time. The invariant tested by the
// aggregator suite: sum(BySubmission) == Total, and without a program
// filter sum(ByProgram) == Total.
type UnreadCounts struct {
	Total        int64
	ByProgram    map[ProgramId]int64
	BySubmission map[SubmissionId]int64
}
