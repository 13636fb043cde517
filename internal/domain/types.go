package domain

type (
	UserId       = int64
	ProgramId    = int64
	SubmissionId = int64
	MsgId        = int64

	SubmissionTitle = string
	MsgText         = string
	VideoRef        = string
)
