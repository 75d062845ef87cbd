package arm

import (
	"github.com/ezrec/riscgen/risc"
)

// Registers are the general purpose registers.
var Registers = risc.NewSymbolizer("register",
	"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7",
	"r8", "r9", "r10", "r11", "r12", "sp", "lr", "pc",
).Alias("r13", 13).Alias("r14", 14).Alias("r15", 15)

// Conditions are the condition codes.
var Conditions = risc.NewSymbolizer("condition",
	"eq", "ne", "cs", "cc", "mi", "pl", "vs", "vc",
	"hi", "ls", "ge", "lt", "gt", "le", "al", "nv",
).Alias("hs", 2).Alias("lo", 3)

var (
	SP = Registers.At(13)
	LR = Registers.At(14)
	PC = Registers.At(15)

	AL = Conditions.At(14) // always
	NV = Conditions.At(15) // never, obsolete
)
