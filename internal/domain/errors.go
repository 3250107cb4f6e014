package domain

import "errors"

var (
	// ErrUnregistered means the user acted before pressing /start
	ErrUnregistered = errors.New("user is not registered")

	// ErrDuplicateWord means the word or its translation already
	// exists within the user's visible vocabulary
	ErrDuplicateWord = errors.New("word or translation already exists")

	// ErrWordNotFound means the deletion target does not exist or
	// is not owned by the user
	ErrWordNotFound = errors.New("word not found")

	// ErrNoWords means there are no visible words to quiz on
	ErrNoWords = errors.New("no words available")

	// ErrSmallPool means fewer than three distractors exist, so a
	// full set of four options cannot be built
	ErrSmallPool = errors.New("not enough words to build options")
)
