// Package utils
package utils

import "testing"

func TestStrToFloat(t *testing.T) {
	tests := []struct {
		input        string
		defaultValue float64
		expected     float64
	}{
		{"1", 0, 1},
		{"4654132", 1, 4654132},
		{"2.5", 0, 2.5},
		{"ABCD", 0, 0},
		{"ABCD", 100, 100},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		result := StrToFloat(test.input, test.defaultValue)
		if result != test.expected {
			fail++
			t.Errorf("StrToFloat(%q, %v) = %v; expected %v", test.input, test.defaultValue, result, test.expected)
		}
		pass++
	}
	t.Logf("TestStrToFloat: %d pass, %d fail", pass, fail)
}

func TestStrToInt(t *testing.T) {
	tests := []struct {
		input        string
		defaultValue int
		expected     int
	}{
		{"1", 0, 1},
		{"4654132", 1, 4654132},
		{"ABCD", 0, 0},
		{"ABCD", 100, 100},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		result := StrToInt(test.input, test.defaultValue)
		if result != test.expected {
			fail++
			t.Errorf("StrToInt(%q, %v) = %v; expected %v", test.input, test.defaultValue, result, test.expected)
		}
		pass++
	}
	t.Logf("TestStrToInt: %d pass, %d fail", pass, fail)
}

func TestRound2(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{2.344, 2.34},
		{2.346, 2.35},
		{3.14159, 3.14},
		{0, 0},
		{10.5, 10.5},
	}
	for _, test := range tests {
		if result := Round2(test.input); result != test.expected {
			t.Errorf("Round2(%v) = %v; expected %v", test.input, result, test.expected)
		}
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b ", []string{"a", "b"}},
		{"", []string{}},
		{" , ,", []string{}},
	}
	for _, test := range tests {
		result := SplitList(test.input)
		if len(result) != len(test.expected) {
			t.Errorf("SplitList(%q) = %v; expected %v", test.input, result, test.expected)
			continue
		}
		for i := range result {
			if result[i] != test.expected[i] {
				t.Errorf("SplitList(%q)[%d] = %q; expected %q", test.input, i, result[i], test.expected[i])
			}
		}
	}
}
