package testdata

import (
	_ "embed" // required to embed files
)

// Secret of Testcase2. Share 8 of Testcase2 is corrupted.
const Testcase2Secret = "1041854399656548289"

//go:embed testcase1.json
var Testcase1 []byte

//go:embed testcase2.json
var Testcase2 []byte

//go:embed invalid_digit.json
var InvalidDigit []byte
