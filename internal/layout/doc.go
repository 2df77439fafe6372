// Package layout describes what goes into the exported library archive.
//
// A layout is normally the built-in libsmp one (Default), optionally
// overridden section by section from a YAML file:
//
//	output: libsmp.zip
//	included_files: [COPYING, README.md, library.properties]
//	included_dirs: [docs]
//	extracted_dirs: [include, src]
//	excluded_files:
//	  - .gitignore
//	  - serial-device-posix.c
//	config_files:
//	  - name: libsmp-config.h
//	    params:
//	      - name: SMP_MESSAGE_MAX_VALUES
//	        default: 8
//	        description: The maximum number of arguments in a message
//	static:
//	  filename: libsmp-static.h
//	  includes: ["<stdint.h>", "\"libsmp.h\""]
//	  structs:
//	    - header: src/buffer.h
//	      source: SmpBuffer
//	      target: SmpStaticBuffer
//	  replacements:
//	    - pattern: SmpBufferFreeFunc
//	      replacement: "void *"
//
// Sections omitted from the file keep their default value. A section that
// is present replaces the default entirely; lists are never merged.
package layout
