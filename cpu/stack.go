package cpu

// push pushes a word onto the stack in memory. The stack grows down.
func (cpu *Cpu) push(value uint16) {
	cpu.Sp -= 2
	cpu.Memory.StoreWord(cpu.Sp, value)
}

// pop pops a word from the stack in memory.
func (cpu *Cpu) pop() (value uint16) {
	value = cpu.Memory.LoadWord(cpu.Sp)
	cpu.Sp += 2
	return
}

// Peek returns the word on the top of the stack.
func (cpu *Cpu) Peek() (value uint16) {
	return cpu.Memory.LoadWord(cpu.Sp)
}
