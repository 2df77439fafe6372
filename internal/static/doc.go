// Package static generates the consolidated "static struct" header.
//
// Each configured Spec names a header, a struct defined in it, and the name
// of a static twin. The twin gets the original member declarations with the
// replacement table applied, so it can be allocated without pulling in the
// callback and handle types of the original.
//
// Generation is all-or-nothing: on any failure no output is returned.
//
// Output layout:
//
//	#pragma once
//
//	#include <stdint.h>
//	#include "libsmp.h"
//
//	#ifdef __cplusplus
//	extern "C" {
//	#endif
//
//	typedef struct SmpStaticBuffer SmpStaticBuffer;
//	struct SmpStaticBuffer {
//	    ...rewritten members...
//	};
//	#ifdef __cplusplus
//	}
//	#endif
package static
