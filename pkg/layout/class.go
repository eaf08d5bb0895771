package layout

// Class Byte (CLA) according to ISO/IEC 7816-4, first interindustry range (000x xxxx).
//
// Structure (zero-based bit numbers):
// Bit 7: Proprietary (1) or Interindustry (0).
// Bit 6: Type of Interindustry (0=First, 1=Further).
// Bit 4: Command Chaining (0=Last/Only, 1=More follow).
// Bits 3-2: Secure Messaging (4 states).
// Bits 1-0: Logical Channel number (0-3).
//
// Bit 5 carries no meaning in the first interindustry range.
var Class = MustNew("CLA", 8,
	Field{Name: "Channel", Start: 0, Width: 2},
	Field{Name: "SecureMessaging", Start: 2, Width: 2, Labels: map[uint64]string{
		0: "None",
		1: "Proprietary",
		2: "ISO (Header not processed)",
		3: "ISO (Header authenticated)",
	}},
	Field{Name: "Chaining", Start: 4, Width: 1, Labels: map[uint64]string{
		0: "Last or only command",
		1: "More commands follow",
	}},
	Field{Name: "Type", Start: 6, Width: 1, Labels: map[uint64]string{
		0: "First Interindustry",
		1: "Further Interindustry",
	}},
	Field{Name: "Proprietary", Start: 7, Width: 1, Labels: map[uint64]string{
		0: "Interindustry",
		1: "Proprietary",
	}},
)

// Builtin returns the layouts that are always available, by name.
func Builtin() map[string]*Layout {
	return map[string]*Layout{
		"cla": Class,
	}
}
