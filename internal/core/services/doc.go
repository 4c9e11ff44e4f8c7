// Package services implements the driving port interfaces.
// Services hold the question-answering pipeline logic and orchestrate
// calls to driven ports (extraction, chunking, embedding, storage,
// generation).
package services
