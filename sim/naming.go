package sim

import (
	"fmt"
	"strconv"
	"strings"
)

// A Name is a hierarchical name made of dot-separated tokens, such as
// "Belt.Slot[2].Worker[0]".
type Name struct {
	Tokens []NameToken
}

// NameToken is one element of a Name, with its optional indices.
type NameToken struct {
	ElemName string
	Index    []int
}

// ParseName splits a name into tokens. It panics on unmatched brackets or
// indices that are not integers.
func ParseName(sname string) Name {
	tokens := strings.Split(sname, ".")
	name := Name{Tokens: make([]NameToken, len(tokens))}

	for i, token := range tokens {
		name.Tokens[i] = parseNameToken(token)
	}

	return name
}

func parseNameToken(token string) NameToken {
	bracketMustMatch(token)

	parts := strings.Split(token, "[")
	indices := make([]int, len(parts)-1)

	for i, p := range parts[1:] {
		index, err := strconv.Atoi(strings.TrimSuffix(p, "]"))
		if err != nil {
			panic("name index must be an integer")
		}

		indices[i] = index
	}

	return NameToken{ElemName: parts[0], Index: indices}
}

func bracketMustMatch(token string) {
	depth := 0

	for _, c := range token {
		switch c {
		case '[':
			depth++
		case ']':
			depth--
			if depth < 0 {
				panic("name brackets must match")
			}
		}
	}

	if depth != 0 {
		panic("name brackets must match")
	}
}

// NameMustBeValid panics if the name is not a dot-separated list of
// capitalized elements, each optionally followed by [index] suffixes.
func NameMustBeValid(name string) {
	defer func() {
		if r := recover(); r != nil {
			panic(fmt.Sprintf("name %q is not valid: %v", name, r))
		}
	}()

	for _, token := range ParseName(name).Tokens {
		tokenMustBeValid(token)
	}
}

func tokenMustBeValid(token NameToken) {
	if token.ElemName == "" {
		panic("name element must not be empty")
	}

	if strings.ContainsAny(token.ElemName, "_\"'- ") {
		panic("name element must be CamelCase")
	}

	if token.ElemName[0] < 'A' || token.ElemName[0] > 'Z' {
		panic("name element must start with a capital letter")
	}
}

// BuildName appends an element to a parent name.
func BuildName(parentName, elementName string) string {
	if parentName == "" {
		return elementName
	}

	return parentName + "." + elementName
}

// BuildNameWithIndex appends an indexed element, as in "Belt.Slot[1]".
func BuildNameWithIndex(parentName, elementName string, index int) string {
	return BuildName(parentName, elementName+"["+strconv.Itoa(index)+"]")
}
