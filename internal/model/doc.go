package model

// Package model defines domain data structures used across the app: reel feed
// items, comments, session identity, offline tasks, and the result and error
// descriptors returned by the mutation engine. Structures are designed for
// direct binding in the UI and explicit state transitions.
