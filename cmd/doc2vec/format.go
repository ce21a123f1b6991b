package main

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

func formatVector(v *mat.VecDense) string {
	parts := make([]string, v.Len())
	for i := range parts {
		parts[i] = strconv.FormatFloat(v.AtVec(i), 'g', 6, 64)
	}
	return strings.Join(parts, " ")
}
