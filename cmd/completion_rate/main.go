// Package main builds libcompletion_rate.so, the native library the Android
// host loads with System.loadLibrary("completion_rate").
//
// Build:
//
//	CGO_ENABLED=1 go build -buildmode=c-shared -o libcompletion_rate.so ./cmd/completion_rate
//
// The exported symbol name encodes the host's package, class and method
// (com.example.guessgame.CompletionRateCalculator.calculateCompletionRate) and
// must not change while the host binds by name.
package main

/*
#include <stdint.h>

typedef int32_t jint;
*/
import "C"

import (
	"unsafe"

	"github.com/guessgame/completionrate/internal/domain/rate"
)

// jint mirrors the JNI 32-bit signed integer for Go callers.
type jint = C.jint

// Java_com_example_guessgame_CompletionRateCalculator_calculateCompletionRate
// is the static native method bound by the host. env and clazz are the JNI
// environment and the calling class; neither is touched.
//
//export Java_com_example_guessgame_CompletionRateCalculator_calculateCompletionRate
func Java_com_example_guessgame_CompletionRateCalculator_calculateCompletionRate(
	env unsafe.Pointer, clazz unsafe.Pointer, completed, total C.jint,
) C.jint {
	return C.jint(rate.Calculate(int32(completed), int32(total)))
}

// main is required by -buildmode=c-shared and never runs inside the host.
func main() {}
