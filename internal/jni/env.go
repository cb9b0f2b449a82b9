package jni

import (
	"errors"
	"fmt"
	"sync"

	"github.com/zboralski/tarsier/internal/emulator"
)

// JNI Constants
const (
	JNI_OK        = 0
	JNI_ERR       = -1
	JNI_EDETACHED = -2
	JNI_EVERSION  = -3

	JNI_VERSION_1_6 = 0x00010006
)

// JNI Function Indices (offset / 8 in JNINativeInterface)
const (
	JNI_GetVersion              = 4
	JNI_FindClass               = 6
	JNI_Throw                   = 13
	JNI_ThrowNew                = 14
	JNI_ExceptionOccurred       = 15
	JNI_ExceptionDescribe       = 16
	JNI_ExceptionClear          = 17
	JNI_PushLocalFrame          = 19
	JNI_PopLocalFrame           = 20
	JNI_NewGlobalRef            = 21
	JNI_DeleteGlobalRef         = 22
	JNI_DeleteLocalRef          = 23
	JNI_IsSameObject            = 24
	JNI_NewLocalRef             = 25
	JNI_EnsureLocalCapacity     = 26
	JNI_GetObjectClass          = 31
	JNI_GetMethodID             = 33
	JNI_GetStaticMethodID       = 113
	JNI_CallStaticObjectMethod  = 114
	JNI_CallStaticBooleanMethod = 117
	JNI_CallStaticByteMethod    = 120
	JNI_CallStaticCharMethod    = 123
	JNI_CallStaticShortMethod   = 126
	JNI_CallStaticIntMethod     = 129
	JNI_CallStaticLongMethod    = 132
	JNI_CallStaticFloatMethod   = 135
	JNI_CallStaticDoubleMethod  = 138
	JNI_CallStaticVoidMethod    = 141
	JNI_NewStringUTF            = 167
	JNI_GetStringUTFLength      = 168
	JNI_GetStringUTFChars       = 169
	JNI_ReleaseStringUTFChars   = 170
	JNI_MonitorEnter            = 217
	JNI_MonitorExit             = 218
	JNI_GetJavaVM               = 219
	JNI_ExceptionCheck          = 228
	JNI_FUNC_COUNT              = 300
)

// JavaVM Function Indices
const (
	JAVAVM_DestroyJavaVM               = 0
	JAVAVM_AttachCurrentThread         = 1
	JAVAVM_DetachCurrentThread         = 2
	JAVAVM_GetEnv                      = 3
	JAVAVM_AttachCurrentThreadAsDaemon = 4
	JAVAVM_FUNC_COUNT                  = 10
)

// ErrTooManyArgs is returned when a call needs more argument registers
// than the marshaller supports (X3..X7 for integer/reference arguments,
// D0..D7 for floating-point arguments).
var ErrTooManyArgs = errors.New("too many arguments for register marshalling")

// Env is a fake JNI environment installed in emulated memory. Class and
// static method resolution go through the binding registry; references
// handed out to the emulated side are opaque cookies tracked in maps.
type Env struct {
	emu *emulator.Emulator
	reg *Registry

	// Memory layout
	jniEnvBase     uint64
	jniVtableBase  uint64
	jniStubBase    uint64
	javaVMBase     uint64
	javaVMVtable   uint64
	javaVMStubBase uint64
	refBase        uint64
	retAddr        uint64 // call trampoline return address

	// String references (NewStringUTF results)
	strings       map[uint64]string
	stringsMu     sync.RWMutex
	nextStringRef uint64

	// Class references
	classRefs    map[string]uint64
	classNames   map[uint64]string
	classesMu    sync.RWMutex
	nextClassRef uint64

	// Static method references
	methodRefs    map[string]uint64
	methods       map[uint64]*Method
	methodsMu     sync.RWMutex
	nextMethodRef uint64
}

// NewEnv creates a JNI environment backed by the given registry.
// A nil registry means DefaultRegistry.
func NewEnv(emu *emulator.Emulator, reg *Registry) *Env {
	if reg == nil {
		reg = DefaultRegistry
	}
	return &Env{
		emu:           emu,
		reg:           reg,
		strings:       make(map[uint64]string),
		classRefs:     make(map[string]uint64),
		classNames:    make(map[uint64]string),
		methodRefs:    make(map[string]uint64),
		methods:       make(map[uint64]*Method),
		// Reference cookies are opaque to the emulated side; the ranges
		// are spaced so class, method and string refs never collide.
		nextStringRef: 0x100000,
		nextClassRef:  0x2000,
		nextMethodRef: 0x3000,
	}
}

// Registry returns the binding registry behind the environment.
func (e *Env) Registry() *Registry {
	return e.reg
}

// Emulator returns the underlying emulator.
func (e *Env) Emulator() *emulator.Emulator {
	return e.emu
}

// Install sets up the JNI environment in emulator memory.
// Returns JNIEnv* and JavaVM* pointers.
func (e *Env) Install() (jniEnv, javaVM uint64) {
	base := uint64(emulator.StubBase) + 0x10000

	e.jniEnvBase = base
	e.jniVtableBase = base + 0x1000
	e.jniStubBase = base + 0x2000
	e.javaVMBase = base + 0x3000
	e.javaVMVtable = base + 0x4000
	e.javaVMStubBase = base + 0x5000
	e.refBase = base + 0x6000
	e.retAddr = base + 0x7000

	retInsn := []byte{0xc0, 0x03, 0x5f, 0xd6} // RET

	// Create JNI function stubs and vtable
	for i := 0; i < JNI_FUNC_COUNT; i++ {
		stubAddr := e.jniStubBase + uint64(i*4)
		e.emu.MemWrite(stubAddr, retInsn)
		e.emu.MemWriteU64(e.jniVtableBase+uint64(i*8), stubAddr)
		e.installJNIHandler(i, stubAddr)
	}

	// Set up JNIEnv structure
	e.emu.MemWriteU64(e.jniEnvBase, e.jniVtableBase)

	// Create JavaVM function stubs and vtable
	for i := 0; i < JAVAVM_FUNC_COUNT; i++ {
		stubAddr := e.javaVMStubBase + uint64(i*4)
		e.emu.MemWrite(stubAddr, retInsn)
		e.emu.MemWriteU64(e.javaVMVtable+uint64(i*8), stubAddr)
		e.installJavaVMHandler(i, stubAddr)
	}

	// Set up JavaVM structure
	e.emu.MemWriteU64(e.javaVMBase, e.javaVMVtable)

	// Call trampoline: caller-side slot invocations set LR here and run
	// until PC reaches it.
	e.emu.MemWrite(e.retAddr, retInsn)

	return e.jniEnvBase, e.javaVMBase
}

func (e *Env) installJNIHandler(index int, stubAddr uint64) {
	switch index {
	case JNI_GetVersion:
		e.emu.HookAddress(stubAddr, e.stubGetVersion)
	case JNI_FindClass:
		e.emu.HookAddress(stubAddr, e.stubFindClass)
	case JNI_GetStaticMethodID:
		e.emu.HookAddress(stubAddr, e.stubGetStaticMethodID)
	case JNI_CallStaticVoidMethod,
		JNI_CallStaticObjectMethod,
		JNI_CallStaticBooleanMethod,
		JNI_CallStaticIntMethod,
		JNI_CallStaticLongMethod,
		JNI_CallStaticFloatMethod,
		JNI_CallStaticDoubleMethod:
		e.emu.HookAddress(stubAddr, e.stubCallStatic)
	case JNI_NewStringUTF:
		e.emu.HookAddress(stubAddr, e.stubNewStringUTF)
	case JNI_GetStringUTFChars:
		e.emu.HookAddress(stubAddr, e.stubGetStringUTFChars)
	case JNI_ReleaseStringUTFChars:
		e.emu.HookAddress(stubAddr, e.stubReleaseStringUTFChars)
	case JNI_GetStringUTFLength:
		e.emu.HookAddress(stubAddr, e.stubGetStringUTFLength)
	case JNI_GetJavaVM:
		e.emu.HookAddress(stubAddr, e.stubGetJavaVM)
	case JNI_ExceptionCheck:
		e.emu.HookAddress(stubAddr, e.stubExceptionCheck)
	case JNI_ExceptionClear, JNI_ExceptionDescribe:
		e.emu.HookAddress(stubAddr, e.stubNoop)
	case JNI_ExceptionOccurred:
		e.emu.HookAddress(stubAddr, e.stubExceptionOccurred)
	case JNI_PushLocalFrame, JNI_EnsureLocalCapacity, JNI_MonitorEnter, JNI_MonitorExit:
		e.emu.HookAddress(stubAddr, e.stubOK)
	case JNI_PopLocalFrame:
		e.emu.HookAddress(stubAddr, e.stubPopLocalFrame)
	case JNI_NewGlobalRef, JNI_NewLocalRef:
		e.emu.HookAddress(stubAddr, e.stubNewRef)
	case JNI_DeleteGlobalRef, JNI_DeleteLocalRef:
		e.emu.HookAddress(stubAddr, e.stubNoop)
	case JNI_IsSameObject:
		e.emu.HookAddress(stubAddr, e.stubIsSameObject)
	default:
		e.emu.HookAddress(stubAddr, e.stubJNIGeneric)
	}
}

func (e *Env) installJavaVMHandler(index int, stubAddr uint64) {
	switch index {
	case JAVAVM_GetEnv:
		e.emu.HookAddress(stubAddr, e.stubJavaVMGetEnv)
	case JAVAVM_AttachCurrentThread, JAVAVM_AttachCurrentThreadAsDaemon:
		e.emu.HookAddress(stubAddr, e.stubAttachCurrentThread)
	case JAVAVM_DetachCurrentThread:
		e.emu.HookAddress(stubAddr, e.stubOK)
	default:
		e.emu.HookAddress(stubAddr, e.stubOK)
	}
}

// GetJNIEnv returns the JNIEnv* pointer.
func (e *Env) GetJNIEnv() uint64 {
	return e.jniEnvBase
}

// GetJavaVM returns the JavaVM* pointer.
func (e *Env) GetJavaVM() uint64 {
	return e.javaVMBase
}

// LookupString resolves a string reference to its payload.
func (e *Env) LookupString(ref uint64) (string, bool) {
	e.stringsMu.RLock()
	defer e.stringsMu.RUnlock()
	s, ok := e.strings[ref]
	return s, ok
}

// TrackedStrings returns a copy of all string references.
func (e *Env) TrackedStrings() map[uint64]string {
	e.stringsMu.RLock()
	defer e.stringsMu.RUnlock()
	out := make(map[uint64]string, len(e.strings))
	for k, v := range e.strings {
		out[k] = v
	}
	return out
}

// internString registers a string payload and returns its reference.
func (e *Env) internString(s string) uint64 {
	e.stringsMu.Lock()
	defer e.stringsMu.Unlock()
	ref := e.refBase + e.nextStringRef
	e.strings[ref] = s
	e.nextStringRef += 8
	return ref
}

// methodByRef resolves a static method reference.
func (e *Env) methodByRef(ref uint64) *Method {
	e.methodsMu.RLock()
	defer e.methodsMu.RUnlock()
	return e.methods[ref]
}

// Handler-side argument unmarshalling: integer and reference arguments
// from X3.., floating-point arguments from D0.., per the method's
// parameter types.
func (e *Env) methodArgs(m *Method) []Value {
	gp, fp := 3, 0
	args := make([]Value, len(m.Params))
	for i, p := range m.Params {
		if p.Kind.FloatingPoint() {
			args[i] = FromRaw(p, e.emu.D(fp), nil)
			fp++
		} else {
			args[i] = FromRaw(p, e.emu.X(gp), e.lookupStr)
			gp++
		}
	}
	return args
}

func (e *Env) lookupStr(ref uint64) (string, bool) {
	return e.LookupString(ref)
}

func returnFromStub(emu *emulator.Emulator) {
	emu.SetPC(emu.LR())
}

// JNI Stub Implementations

func (e *Env) stubGetVersion(emu *emulator.Emulator) bool {
	emu.SetX(0, JNI_VERSION_1_6)
	returnFromStub(emu)
	return false
}

func (e *Env) stubFindClass(emu *emulator.Emulator) bool {
	namePtr := emu.X(1)
	className, _ := emu.MemReadString(namePtr, 256)

	if _, ok := e.reg.Lookup(className); !ok {
		e.reg.Log(emu.LR(), "miss", "FindClass", className)
		emu.SetX(0, 0)
		returnFromStub(emu)
		return false
	}

	e.classesMu.Lock()
	ref, ok := e.classRefs[className]
	if !ok {
		ref = e.refBase + e.nextClassRef
		e.classRefs[className] = ref
		e.classNames[ref] = className
		e.nextClassRef += 8
	}
	e.classesMu.Unlock()

	e.reg.Log(emu.LR(), "jni", "FindClass", className)
	emu.SetX(0, ref)
	returnFromStub(emu)
	return false
}

func (e *Env) stubGetStaticMethodID(emu *emulator.Emulator) bool {
	clsRef := emu.X(1)
	namePtr := emu.X(2)
	sigPtr := emu.X(3)
	methodName, _ := emu.MemReadString(namePtr, 256)
	methodSig, _ := emu.MemReadString(sigPtr, 256)

	e.classesMu.RLock()
	className, okCls := e.classNames[clsRef]
	e.classesMu.RUnlock()

	var method *Method
	if okCls {
		if cls, ok := e.reg.Lookup(className); ok {
			method, _ = cls.Method(methodName, methodSig)
		}
	}

	if method == nil {
		e.reg.Log(emu.LR(), "miss", "GetStaticMethodID", className+"."+methodName+methodSig)
		emu.SetX(0, 0)
		returnFromStub(emu)
		return false
	}

	key := className + "." + methodName + methodSig
	e.methodsMu.Lock()
	ref, ok := e.methodRefs[key]
	if !ok {
		ref = e.refBase + 0x20000 + e.nextMethodRef
		e.methodRefs[key] = ref
		e.methods[ref] = method
		e.nextMethodRef += 8
	}
	e.methodsMu.Unlock()

	e.reg.Log(emu.LR(), "jni", "GetStaticMethodID", methodName+methodSig)
	emu.SetX(0, ref)
	returnFromStub(emu)
	return false
}

// stubCallStatic backs every CallStatic<Type>Method slot. The bound
// method's declared return kind selects the result register: D0 for
// float/double, X0 otherwise, nothing for void.
func (e *Env) stubCallStatic(emu *emulator.Emulator) bool {
	mid := emu.X(2)
	m := e.methodByRef(mid)
	if m == nil {
		e.reg.Log(emu.LR(), "miss", "CallStaticMethod", fmt.Sprintf("unknown methodID 0x%x", mid))
		emu.SetX(0, 0)
		returnFromStub(emu)
		return false
	}

	args := e.methodArgs(m)
	result := m.Fn(e, args)

	e.reg.Log(emu.LR(), "jni", callVariant(m.Ret.Kind),
		m.Class+"."+m.Name+m.Sig+" -> "+result.String())

	switch m.Ret.Kind {
	case KindVoid:
		// No result register.
	case KindFloat, KindDouble:
		emu.SetD(0, result.RawBits())
	case KindObject:
		ref := result.Ref
		if result.IsStr {
			ref = e.internString(result.Str)
		}
		emu.SetX(0, ref)
	default:
		emu.SetX(0, result.RawBits())
	}

	returnFromStub(emu)
	return false
}

// callVariant names the CallStatic*Method slot for a return kind.
func callVariant(k Kind) string {
	switch k {
	case KindVoid:
		return "CallStaticVoidMethod"
	case KindBoolean:
		return "CallStaticBooleanMethod"
	case KindInt:
		return "CallStaticIntMethod"
	case KindLong:
		return "CallStaticLongMethod"
	case KindFloat:
		return "CallStaticFloatMethod"
	case KindDouble:
		return "CallStaticDoubleMethod"
	case KindObject:
		return "CallStaticObjectMethod"
	}
	return "CallStaticMethod"
}

func (e *Env) stubNewStringUTF(emu *emulator.Emulator) bool {
	utfPtr := emu.X(1)
	str, _ := emu.MemReadString(utfPtr, 4096)

	ref := e.internString(str)

	truncated := str
	if len(truncated) > 40 {
		truncated = truncated[:40] + "..."
	}
	e.reg.Log(emu.LR(), "string", "NewStringUTF", "\""+truncated+"\"")

	emu.SetX(0, ref)
	returnFromStub(emu)
	return false
}

func (e *Env) stubGetStringUTFChars(emu *emulator.Emulator) bool {
	jstr := emu.X(1)
	isCopyPtr := emu.X(2)

	s, _ := e.LookupString(jstr)

	buf := emu.Malloc(uint64(len(s) + 1))
	emu.MemWriteString(buf, s)

	if isCopyPtr != 0 {
		emu.MemWriteU8(isCopyPtr, 1)
	}

	emu.SetX(0, buf)
	returnFromStub(emu)
	return false
}

func (e *Env) stubReleaseStringUTFChars(emu *emulator.Emulator) bool {
	returnFromStub(emu)
	return false
}

func (e *Env) stubGetStringUTFLength(emu *emulator.Emulator) bool {
	jstr := emu.X(1)
	s, _ := e.LookupString(jstr)
	emu.SetX(0, uint64(len(s)))
	returnFromStub(emu)
	return false
}

func (e *Env) stubGetJavaVM(emu *emulator.Emulator) bool {
	vmPtr := emu.X(1)
	emu.MemWriteU64(vmPtr, e.javaVMBase)
	emu.SetX(0, JNI_OK)
	returnFromStub(emu)
	return false
}

func (e *Env) stubExceptionCheck(emu *emulator.Emulator) bool {
	emu.SetX(0, 0) // No exception, ever: failures surface as null refs.
	returnFromStub(emu)
	return false
}

func (e *Env) stubExceptionOccurred(emu *emulator.Emulator) bool {
	emu.SetX(0, 0)
	returnFromStub(emu)
	return false
}

func (e *Env) stubPopLocalFrame(emu *emulator.Emulator) bool {
	result := emu.X(1)
	emu.SetX(0, result)
	returnFromStub(emu)
	return false
}

func (e *Env) stubNewRef(emu *emulator.Emulator) bool {
	obj := emu.X(1)
	emu.SetX(0, obj)
	returnFromStub(emu)
	return false
}

func (e *Env) stubIsSameObject(emu *emulator.Emulator) bool {
	if emu.X(1) == emu.X(2) {
		emu.SetX(0, 1)
	} else {
		emu.SetX(0, 0)
	}
	returnFromStub(emu)
	return false
}

func (e *Env) stubNoop(emu *emulator.Emulator) bool {
	returnFromStub(emu)
	return false
}

func (e *Env) stubOK(emu *emulator.Emulator) bool {
	emu.SetX(0, JNI_OK)
	returnFromStub(emu)
	return false
}

func (e *Env) stubJNIGeneric(emu *emulator.Emulator) bool {
	emu.SetX(0, 0) // Unimplemented slots return the null reference.
	returnFromStub(emu)
	return false
}

// JavaVM Stub Implementations

func (e *Env) stubJavaVMGetEnv(emu *emulator.Emulator) bool {
	penvPtr := emu.X(1)
	emu.MemWriteU64(penvPtr, e.jniEnvBase)
	emu.SetX(0, JNI_OK)
	returnFromStub(emu)
	return false
}

func (e *Env) stubAttachCurrentThread(emu *emulator.Emulator) bool {
	penvPtr := emu.X(1)
	emu.MemWriteU64(penvPtr, e.jniEnvBase)
	emu.SetX(0, JNI_OK)
	returnFromStub(emu)
	return false
}

// Caller-side slot invocation

// slotAddr reads a function pointer out of the installed vtable.
func (e *Env) slotAddr(index int) (uint64, error) {
	return e.emu.MemReadU64(e.jniVtableBase + uint64(index*8))
}

// invoke calls a JNIEnv slot through the emulated function table:
// X0 = JNIEnv*, X1.. = integer/reference arguments, D0.. = floating-point
// arguments. Execution runs until PC reaches the call trampoline.
func (e *Env) invoke(index int, gp []uint64, fp []uint64) (uint64, uint64, error) {
	if len(gp) > 7 || len(fp) > 8 {
		return 0, 0, ErrTooManyArgs
	}

	addr, err := e.slotAddr(index)
	if err != nil {
		return 0, 0, fmt.Errorf("read vtable slot %d: %w", index, err)
	}

	e.emu.SetX(0, e.jniEnvBase)
	for i, v := range gp {
		e.emu.SetX(1+i, v)
	}
	for i, v := range fp {
		e.emu.SetD(i, v)
	}
	e.emu.SetLR(e.retAddr)

	if err := e.emu.Run(addr, e.retAddr); err != nil {
		return 0, 0, fmt.Errorf("invoke slot %d: %w", index, err)
	}
	return e.emu.X(0), e.emu.D(0), nil
}

// FindClass resolves a class by JNI class path. Returns the null
// reference when the class is not bound.
func (e *Env) FindClass(name string) (uint64, error) {
	ptr := e.emu.Malloc(uint64(len(name) + 1))
	if err := e.emu.MemWriteString(ptr, name); err != nil {
		return 0, fmt.Errorf("write class name: %w", err)
	}
	x0, _, err := e.invoke(JNI_FindClass, []uint64{ptr}, nil)
	return x0, err
}

// GetStaticMethodID resolves a static method by name and exact signature.
// Returns the null reference when no such method is bound.
func (e *Env) GetStaticMethodID(cls uint64, name, sig string) (uint64, error) {
	namePtr := e.emu.Malloc(uint64(len(name) + 1))
	if err := e.emu.MemWriteString(namePtr, name); err != nil {
		return 0, fmt.Errorf("write method name: %w", err)
	}
	sigPtr := e.emu.Malloc(uint64(len(sig) + 1))
	if err := e.emu.MemWriteString(sigPtr, sig); err != nil {
		return 0, fmt.Errorf("write method signature: %w", err)
	}
	x0, _, err := e.invoke(JNI_GetStaticMethodID, []uint64{cls, namePtr, sigPtr}, nil)
	return x0, err
}

// NewStringUTF creates a string reference from a Go string.
func (e *Env) NewStringUTF(s string) (uint64, error) {
	ptr := e.emu.Malloc(uint64(len(s) + 1))
	if err := e.emu.MemWriteString(ptr, s); err != nil {
		return 0, fmt.Errorf("write string data: %w", err)
	}
	x0, _, err := e.invoke(JNI_NewStringUTF, []uint64{ptr}, nil)
	return x0, err
}

// marshalArgs builds the register images for a static call: class and
// method references first, then integer/reference arguments; float and
// double arguments go to the D registers. String payloads are interned
// through NewStringUTF before the call.
func (e *Env) marshalArgs(cls, mid uint64, args []Value) (gp, fp []uint64, err error) {
	gp = append(gp, cls, mid)
	for _, a := range args {
		switch {
		case a.Kind.FloatingPoint():
			fp = append(fp, a.RawBits())
		case a.Kind == KindObject && a.IsStr:
			ref, err := e.NewStringUTF(a.Str)
			if err != nil {
				return nil, nil, err
			}
			gp = append(gp, ref)
		default:
			gp = append(gp, a.RawBits())
		}
	}
	if len(gp) > 7 || len(fp) > 8 {
		return nil, nil, ErrTooManyArgs
	}
	return gp, fp, nil
}

// CallStaticVoidMethod invokes a void static method.
func (e *Env) CallStaticVoidMethod(cls, mid uint64, args ...Value) error {
	gp, fp, err := e.marshalArgs(cls, mid, args)
	if err != nil {
		return err
	}
	_, _, err = e.invoke(JNI_CallStaticVoidMethod, gp, fp)
	return err
}

// CallStaticBooleanMethod invokes a boolean static method.
func (e *Env) CallStaticBooleanMethod(cls, mid uint64, args ...Value) (bool, error) {
	gp, fp, err := e.marshalArgs(cls, mid, args)
	if err != nil {
		return false, err
	}
	x0, _, err := e.invoke(JNI_CallStaticBooleanMethod, gp, fp)
	return x0&1 != 0, err
}

// CallStaticIntMethod invokes an int static method.
func (e *Env) CallStaticIntMethod(cls, mid uint64, args ...Value) (int32, error) {
	gp, fp, err := e.marshalArgs(cls, mid, args)
	if err != nil {
		return 0, err
	}
	x0, _, err := e.invoke(JNI_CallStaticIntMethod, gp, fp)
	return int32(uint32(x0)), err
}

// CallStaticLongMethod invokes a long static method.
func (e *Env) CallStaticLongMethod(cls, mid uint64, args ...Value) (int64, error) {
	gp, fp, err := e.marshalArgs(cls, mid, args)
	if err != nil {
		return 0, err
	}
	x0, _, err := e.invoke(JNI_CallStaticLongMethod, gp, fp)
	return int64(x0), err
}

// CallStaticFloatMethod invokes a float static method.
func (e *Env) CallStaticFloatMethod(cls, mid uint64, args ...Value) (float32, error) {
	gp, fp, err := e.marshalArgs(cls, mid, args)
	if err != nil {
		return 0, err
	}
	_, d0, err := e.invoke(JNI_CallStaticFloatMethod, gp, fp)
	return FromRaw(TypeFloat, d0, nil).AsFloat(), err
}

// CallStaticDoubleMethod invokes a double static method.
func (e *Env) CallStaticDoubleMethod(cls, mid uint64, args ...Value) (float64, error) {
	gp, fp, err := e.marshalArgs(cls, mid, args)
	if err != nil {
		return 0, err
	}
	_, d0, err := e.invoke(JNI_CallStaticDoubleMethod, gp, fp)
	return FromRaw(TypeDouble, d0, nil).AsDouble(), err
}

// CallStaticObjectMethod invokes an object static method and returns the
// raw reference.
func (e *Env) CallStaticObjectMethod(cls, mid uint64, args ...Value) (uint64, error) {
	gp, fp, err := e.marshalArgs(cls, mid, args)
	if err != nil {
		return 0, err
	}
	x0, _, err := e.invoke(JNI_CallStaticObjectMethod, gp, fp)
	return x0, err
}
