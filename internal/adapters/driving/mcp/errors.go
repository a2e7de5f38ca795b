// Package mcp provides an MCP (Model Context Protocol) server adapter for oddart.
// It lets AI assistants draw and answer Odd Art Out rounds.
package mcp

import "errors"

// ErrMissingQuizService is returned when the quiz service is not provided.
var ErrMissingQuizService = errors.New("mcp: quiz service is required")

// ErrUnknownRound is returned when an answer names a round that was never
// drawn or was already answered.
var ErrUnknownRound = errors.New("mcp: unknown round")
