package arm_test

import (
	"context"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/riscgen/arm"
	"github.com/ezrec/riscgen/corpus"
	"github.com/ezrec/riscgen/risc"
)

var _ = Describe("Templates", func() {
	It("should have one template per shape of each data processing mnemonic", func() {
		var names []string
		for _, t := range arm.Templates() {
			names = append(names, t.Mnemonic())
		}

		Expect(names).To(HaveLen(16*11 + 2 + 4*3 + 3 + 1))
		Expect(names).To(ContainElements("addi", "add", "addlsl", "addrrx", "cmplsrr", "mvnror"))
		Expect(names).To(ContainElements("mul", "mla", "ldrpre", "strbpost", "b", "bl", "bx", "swi"))
	})

	It("should present the shapes under the mnemonic", func() {
		for _, t := range arm.DataProcessing("sub", 2, arm.KIND_NORMAL) {
			Expect(t.ExternalName()).To(Equal("sub"))
			Expect(t.Reference()).To(HavePrefix("A5.1."))
		}
	})

	It("should name the kinds", func() {
		Expect(arm.KIND_NORMAL.String()).To(Equal("normal"))
		Expect(arm.KIND_COMPARE.String()).To(Equal("compare"))
		Expect(arm.Kind(9).String()).To(Equal("Kind(9)"))
	})

	It("should panic on an unknown shape", func() {
		Expect(func() {
			arm.DataProcessingShape("add", 4, arm.KIND_NORMAL, "lsx")
		}).To(PanicWith(BeAssignableToTypeOf(&risc.ErrDefinition{})))

		Expect(func() {
			arm.DataProcessingShape("add", 4, arm.Kind(9), "")
		}).To(PanicWith(BeAssignableToTypeOf(&risc.ErrDefinition{})))
	})
})

var _ = Describe("Immediate", func() {
	It("should encode with the smallest rotation", func() {
		rotate, immed8, ok := arm.EncodeImmediate(0xff000000)
		Expect(ok).To(BeTrue())
		Expect(rotate).To(Equal(4))
		Expect(immed8).To(Equal(uint32(0xff)))

		rotate, immed8, ok = arm.EncodeImmediate(1)
		Expect(ok).To(BeTrue())
		Expect(rotate).To(Equal(0))
		Expect(immed8).To(Equal(uint32(1)))

		rotate, immed8, ok = arm.EncodeImmediate(0xc000003f)
		Expect(ok).To(BeTrue())
		Expect(rotate).To(Equal(1))
		Expect(immed8).To(Equal(uint32(0xff)))
	})

	It("should reject values wider than 8 bits", func() {
		_, _, ok := arm.EncodeImmediate(0x101)
		Expect(ok).To(BeFalse())

		_, _, ok = arm.EncodeImmediate(0xff0000ff)
		Expect(ok).To(BeFalse())

		err := arm.ErrImmediate(0x101)
		Expect(err.Error()).To(Equal("immediate 0x00000101 has no rotated encoding"))
		Expect(err).To(MatchError(risc.ErrRange))
	})

	It("should decode what it encodes", func() {
		for _, value := range []uint32{0, 1, 0xff, 0x3fc, 0xff000000, 0xf000000f, 0x80000000} {
			rotate, immed8, ok := arm.EncodeImmediate(value)
			Expect(ok).To(BeTrue(), "0x%08x", value)
			Expect(arm.DecodeImmediate(rotate, immed8)).To(Equal(value))
		}
	})
})

var _ = Describe("Assembler", func() {
	var asm *risc.Assembler

	BeforeEach(func() {
		asm = risc.NewAssembler(arm.Templates()...)
	})

	assemble := func(line string) uint32 {
		prog, err := asm.Parse(strings.NewReader(line))
		Expect(err).NotTo(HaveOccurred(), line)
		Expect(prog.Opcodes).To(HaveLen(1))
		return prog.Opcodes[0].Word
	}

	It("should assemble data processing instructions", func() {
		Expect(assemble("add r1, r2, r3")).To(Equal(uint32(0xE0821003)))
		Expect(assemble("adds r1, r2, r3")).To(Equal(uint32(0xE0921003)))
		Expect(assemble("addseq r1, r2, r3")).To(Equal(uint32(0x00921003)))
		Expect(assemble("add r0, r1, r2, lsl r3")).To(Equal(uint32(0xE0810312)))
		Expect(assemble("cmp r1, #4")).To(Equal(uint32(0xE3510004)))
		Expect(assemble("mov r0, #0xff000000")).To(Equal(uint32(0xE3A004FF)))
		Expect(assemble("mov r0, r1, lsr #32")).To(Equal(uint32(0xE1A00021)))
		Expect(assemble("mov r0, r1, rrx")).To(Equal(uint32(0xE1A00061)))
		Expect(assemble("movs r0, r1, ror #1")).To(Equal(uint32(0xE1B000E1)))
		Expect(assemble("MOV R0, R15")).To(Equal(uint32(0xE1A0000F)))
	})

	It("should assemble multiplies", func() {
		Expect(assemble("mul r0, r1, r2")).To(Equal(uint32(0xE0000291)))
		Expect(assemble("mla r0, r1, r2, r3")).To(Equal(uint32(0xE0203291)))
	})

	It("should assemble loads and stores", func() {
		Expect(assemble("ldr r0, [r1, #4]")).To(Equal(uint32(0xE5910004)))
		Expect(assemble("str r0, [r1, #-4]")).To(Equal(uint32(0xE5010004)))
		Expect(assemble("ldr r0, [r1, #4]!")).To(Equal(uint32(0xE5B10004)))
		Expect(assemble("ldr r0, [r1], #4")).To(Equal(uint32(0xE4910004)))
		Expect(assemble("ldrb r2, [r3, #0]")).To(Equal(uint32(0xE5D32000)))
	})

	It("should assemble branches and interrupts", func() {
		Expect(assemble("b -8")).To(Equal(uint32(0xEAFFFFFE)))
		Expect(assemble("bl 0")).To(Equal(uint32(0xEB000000)))
		Expect(assemble("bleq 0")).To(Equal(uint32(0x0B000000)))
		Expect(assemble("bx lr")).To(Equal(uint32(0xE12FFF1E)))
		Expect(assemble("swi 0x123456")).To(Equal(uint32(0xEF123456)))
	})

	It("should lay out words little endian", func() {
		prog, err := asm.Parse(strings.NewReader("swi 0x123456\nadd r1, r2, r3"))
		Expect(err).NotTo(HaveOccurred())
		Expect(prog.Binary(arm.ByteOrder)).To(Equal([]byte{0x56, 0x34, 0x12, 0xEF, 0x03, 0x10, 0x82, 0xE0}))
	})

	It("should reject immediates without a rotated encoding", func() {
		_, err := asm.Parse(strings.NewReader("mov r0, #0x101"))
		Expect(err).To(MatchError(risc.ErrConstraint))
	})

	It("should reject out of range shifts", func() {
		_, err := asm.Parse(strings.NewReader("mov r0, r1, lsr #33"))
		Expect(err).To(MatchError(risc.ErrRange))
	})
})

var _ = Describe("Disassembler", func() {
	var dis *risc.Disassembler

	BeforeEach(func() {
		dis = risc.NewDisassembler(arm.Templates()...)
	})

	disassemble := func(word uint32) string {
		in, err := dis.Disassemble(word)
		Expect(err).NotTo(HaveOccurred(), "0x%08x", word)
		return in.String()
	}

	It("should disassemble to the external syntax", func() {
		Expect(disassemble(0xEF123456)).To(Equal("swi 1193046"))
		Expect(disassemble(0xE3510004)).To(Equal("cmp r1, #4"))
		Expect(disassemble(0xE1A00000)).To(Equal("mov r0, r0"))
		Expect(disassemble(0xE1A00021)).To(Equal("mov r0, r1, lsr #32"))
		Expect(disassemble(0xE5910004)).To(Equal("ldr r0, [r1, #4]"))
		Expect(disassemble(0xE4910004)).To(Equal("ldr r0, [r1], #4"))
		Expect(disassemble(0x0A000000)).To(Equal("beq 0"))
		Expect(disassemble(0xE12FFF1E)).To(Equal("bx lr"))
		Expect(disassemble(0x00921003)).To(Equal("addseq r1, r2, r3"))
	})

	It("should pick the decorated template", func() {
		in, err := dis.Disassemble(0xE0810312)
		Expect(err).NotTo(HaveOccurred())
		Expect(in.Template.Mnemonic()).To(Equal("addlslr"))
		Expect(in.Template.ExternalName()).To(Equal("add"))
	})

	It("should not claim unallocated words", func() {
		_, err := dis.Disassemble(0xE7000010)
		Expect(err).To(MatchError(risc.ErrNoMatch))
	})

	It("should not claim immediates with a larger rotation than needed", func() {
		_, err := dis.Disassemble(0xE3A00104)
		Expect(err).To(MatchError(risc.ErrNoMatch))
	})
})

var _ = Describe("Corpus", func() {
	It("should pass the self check", func() {
		gen := &corpus.Generator{}
		cases, err := gen.SelfCheck(context.Background(), arm.Templates()...)
		Expect(err).NotTo(HaveOccurred())
		Expect(cases).To(BeNumerically(">", len(arm.Templates())))
	})

	It("should validate against itself", func() {
		gen := &corpus.Generator{Limit: 8}
		_, err := gen.Validate(context.Background(), corpus.NewLoopback(arm.Templates()...), arm.Templates()...)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should leave nv out of external test cases", func() {
		gen := &corpus.Generator{Mode: corpus.MODE_EXHAUSTIVE}
		for args := range gen.TestCases(arm.SoftwareInterrupt(), risc.TARGET_EXTERNAL_ASSEMBLER) {
			Expect(args[0]).NotTo(Equal(risc.Argument(arm.NV)))
		}
	})
})
