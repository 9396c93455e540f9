package classify

import "testing"

func TestClassify_SampleFunction(t *testing.T) {
	content := "export function add(a,b) {\n" +
		"  // sum two numbers\n" +
		"  const result = a + b;\n" +
		"  if (result < 0) {\n" +
		"  }\n" +
		"}"

	lines := Classify(content)
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d", len(lines))
	}

	want := []Importance{
		ImportanceSignature, // export function
		ImportanceDetail,    // comment
		ImportanceLogic,     // assignment
		ImportanceStructure, // if
		ImportanceStructure, // closing brace
		ImportanceSignature, // final line of the block
	}
	for i, w := range want {
		if lines[i].Importance != w {
			t.Errorf("line %d (%q) = %q, want %q", i, lines[i].Content, lines[i].Importance, w)
		}
	}
}

func TestClassify_LineKinds(t *testing.T) {
	tests := []struct {
		line string
		want Importance
	}{
		{"def fibonacci(n):", ImportanceSignature},
		{"func (s *Server) Start(ctx context.Context) error {", ImportanceSignature},
		{"class Matrix:", ImportanceSignature},
		{"import { useState } from 'react';", ImportanceSignature},
		{"from collections import deque", ImportanceSignature},
		{"#include <stdio.h>", ImportanceSignature},
		{"package main", ImportanceSignature},
		{"type Config struct {", ImportanceSignature},
		{"export const handler = async (event) => {", ImportanceSignature},
		{"public static void main(String[] args) {", ImportanceSignature},

		{"if x > 0:", ImportanceStructure},
		{"for i := range items {", ImportanceStructure},
		{"while (queue.length > 0) {", ImportanceStructure},
		{"return total", ImportanceStructure},
		{"} else {", ImportanceStructure},
		{"except ValueError:", ImportanceStructure},
		{"})", ImportanceStructure},
		{"};", ImportanceStructure},
		{"  }", ImportanceStructure},

		{"total += price * quantity", ImportanceLogic},
		{"x = compute(y)", ImportanceLogic},
		{"  result := strings.TrimSpace(input)", ImportanceLogic},
		{"  console.log(message);", ImportanceLogic},

		{"// a comment", ImportanceDetail},
		{"# python comment", ImportanceDetail},
		{"  \"just a string\",", ImportanceDetail},
		{"42,", ImportanceDetail},
	}

	for _, tt := range tests {
		// Append a trailing line so the line under test is never the final
		// non-blank line, which is always a signature.
		lines := Classify(tt.line + "\nEND")
		if got := lines[0].Importance; got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestClassify_FinalNonBlankLineIsSignature(t *testing.T) {
	lines := Classify("x = 1\ny = 2\n\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[1].Importance != ImportanceSignature {
		t.Errorf("final non-blank line = %q, want signature", lines[1].Importance)
	}
	if lines[0].Importance != ImportanceLogic {
		t.Errorf("first line = %q, want logic", lines[0].Importance)
	}
}

func TestClassify_BlankLines(t *testing.T) {
	lines := Classify("def f():\n\n   \n    return 1")
	if !lines[1].Blank || !lines[2].Blank {
		t.Error("expected lines 1 and 2 to be blank")
	}
	if lines[0].Blank || lines[3].Blank {
		t.Error("expected lines 0 and 3 to be non-blank")
	}
	if lines[1].Importance != ImportanceDetail {
		t.Errorf("blank line importance = %q, want detail", lines[1].Importance)
	}
}

func TestClassify_Empty(t *testing.T) {
	if got := Classify(""); got != nil {
		t.Errorf("Classify(\"\") = %v, want nil", got)
	}
}

func TestClassify_Indices(t *testing.T) {
	lines := Classify("a\nb\nc")
	for i, l := range lines {
		if l.Index != i {
			t.Errorf("line %d has Index %d", i, l.Index)
		}
	}
}

func TestClassify_TrailingNewline(t *testing.T) {
	// A single trailing newline does not create a phantom empty line.
	lines := Classify("x = 1\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
}
