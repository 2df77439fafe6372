package static

import "libsmp-export/internal/rewrite"

// DefaultSpecs are the libsmp structs that get a static twin.
//
// SmpMessage is not listed: it is declared as an anonymous typedef'd struct
// in include/libsmp.h, which the "struct <name> {" anchor cannot find.
func DefaultSpecs() []Spec {
	return []Spec{
		{Header: "src/buffer.h", Source: "SmpBuffer", Target: "SmpStaticBuffer"},
		{Header: "src/context.h", Source: "SmpContext", Target: "SmpStaticContext"},
		{Header: "src/serial-protocol.h", Source: "SmpSerialProtocolDecoder", Target: "SmpStaticSerialProtocolDecoder"},
	}
}

// DefaultReplacements turn libsmp's dynamic member types into plain
// pointers and integers. Order matters: type names that are prefixes of
// other entries come last.
func DefaultReplacements() rewrite.Table {
	return rewrite.NewTable(
		"SmpBufferFreeFunc", "void *",
		"SmpSerialProtocolDecoderState", "int",
		"SmpSerialProtocolDecoder", "void",
		"SmpSerialDevice", "int",
		"SmpEventCallbacks cbs", "void *cbs[2]",
		"SmpBuffer", "void",
		"SmpMessage", "void",
	)
}

// DefaultConfig returns the libsmp static header configuration.
func DefaultConfig() Config {
	return Config{
		Specs:        DefaultSpecs(),
		Replacements: DefaultReplacements(),
		Includes:     DefaultIncludes(),
	}
}
