// Copyright 2025 dotandev
// SPDX-License-Identifier: Apache-2.0

package xdr

type SequenceNumber Int64

type Thresholds [4]byte

// ExtensionPoint is the reserved void extension union.
type ExtensionPoint struct {
	V int32
}

func (u ExtensionPoint) SwitchFieldName() string {
	return "V"
}

func (u ExtensionPoint) ArmForSwitch(sw int32) (string, bool) {
	if sw == 0 {
		return "", true
	}
	return "", false
}

type SignerKeyType int32

const SignerKeyTypeSignerKeyTypeEd25519 SignerKeyType = 0

func (e SignerKeyType) ValidEnum(v int32) bool {
	return v == 0
}

type SignerKey struct {
	Type    SignerKeyType
	Ed25519 *Uint256
}

func (u SignerKey) SwitchFieldName() string {
	return "Type"
}

func (u SignerKey) ArmForSwitch(sw int32) (string, bool) {
	if SignerKeyType(sw) == SignerKeyTypeSignerKeyTypeEd25519 {
		return "Ed25519", true
	}
	return "", false
}

type Signer struct {
	Key    SignerKey
	Weight Uint32
}

type AccountEntryExt struct {
	V int32
}

func (u AccountEntryExt) SwitchFieldName() string {
	return "V"
}

func (u AccountEntryExt) ArmForSwitch(sw int32) (string, bool) {
	if sw == 0 {
		return "", true
	}
	return "", false
}

type AccountEntry struct {
	AccountId     AccountId
	Balance       Int64
	SeqNum        SequenceNumber
	NumSubEntries Uint32
	InflationDest *AccountId
	Flags         Uint32
	HomeDomain    string
	Thresholds    Thresholds
	Signers       []Signer
	Ext           AccountEntryExt
}

type ContractCodeEntry struct {
	Ext  ExtensionPoint
	Hash Hash
	Code []byte
}

type ContractDataEntry struct {
	ContractId Hash
	Key        ScVal
	Val        ScVal
}

type LedgerEntryType int32

const (
	LedgerEntryTypeAccount          LedgerEntryType = 0
	LedgerEntryTypeTrustline        LedgerEntryType = 1
	LedgerEntryTypeOffer            LedgerEntryType = 2
	LedgerEntryTypeData             LedgerEntryType = 3
	LedgerEntryTypeClaimableBalance LedgerEntryType = 4
	LedgerEntryTypeLiquidityPool    LedgerEntryType = 5
	LedgerEntryTypeContractData     LedgerEntryType = 6
	LedgerEntryTypeContractCode     LedgerEntryType = 7
)

func (e LedgerEntryType) ValidEnum(v int32) bool {
	return v >= 0 && v <= 7
}

// LedgerEntryData carries only the entry kinds the sandbox seeds.
type LedgerEntryData struct {
	Type         LedgerEntryType
	Account      *AccountEntry
	ContractData *ContractDataEntry
	ContractCode *ContractCodeEntry
}

func (u LedgerEntryData) SwitchFieldName() string {
	return "Type"
}

func (u LedgerEntryData) ArmForSwitch(sw int32) (string, bool) {
	switch LedgerEntryType(sw) {
	case LedgerEntryTypeAccount:
		return "Account", true
	case LedgerEntryTypeContractData:
		return "ContractData", true
	case LedgerEntryTypeContractCode:
		return "ContractCode", true
	}
	return "", false
}

type LedgerEntryExt struct {
	V int32
}

func (u LedgerEntryExt) SwitchFieldName() string {
	return "V"
}

func (u LedgerEntryExt) ArmForSwitch(sw int32) (string, bool) {
	if sw == 0 {
		return "", true
	}
	return "", false
}

type LedgerEntry struct {
	LastModifiedLedgerSeq Uint32
	Data                  LedgerEntryData
	Ext                   LedgerEntryExt
}

type LedgerKeyAccount struct {
	AccountId AccountId
}

type LedgerKeyContractData struct {
	ContractId Hash
	Key        ScVal
}

type LedgerKeyContractCode struct {
	Hash Hash
}

type LedgerKey struct {
	Type         LedgerEntryType
	Account      *LedgerKeyAccount
	ContractData *LedgerKeyContractData
	ContractCode *LedgerKeyContractCode
}

func (u LedgerKey) SwitchFieldName() string {
	return "Type"
}

func (u LedgerKey) ArmForSwitch(sw int32) (string, bool) {
	switch LedgerEntryType(sw) {
	case LedgerEntryTypeAccount:
		return "Account", true
	case LedgerEntryTypeContractData:
		return "ContractData", true
	case LedgerEntryTypeContractCode:
		return "ContractCode", true
	}
	return "", false
}

// Equals compares ledger keys by their canonical binary form.
func (u LedgerKey) Equals(other LedgerKey) (bool, error) {
	a, err := MarshalBinary(u)
	if err != nil {
		return false, err
	}
	b, err := MarshalBinary(other)
	if err != nil {
		return false, err
	}
	return string(a) == string(b), nil
}

// InstallContractCodeArgs is the canonical framing hashed to derive a
// contract code identifier.
type InstallContractCodeArgs struct {
	Code []byte
}

type HostFunctionType int32

const (
	HostFunctionTypeHostFunctionTypeInvokeContract      HostFunctionType = 0
	HostFunctionTypeHostFunctionTypeCreateContract      HostFunctionType = 1
	HostFunctionTypeHostFunctionTypeInstallContractCode HostFunctionType = 2
)

func (e HostFunctionType) ValidEnum(v int32) bool {
	return v >= 0 && v <= 2
}

type HostFunction struct {
	Type                    HostFunctionType
	InvokeArgs              *ScVec
	InstallContractCodeArgs *InstallContractCodeArgs
}

func (u HostFunction) SwitchFieldName() string {
	return "Type"
}

func (u HostFunction) ArmForSwitch(sw int32) (string, bool) {
	switch HostFunctionType(sw) {
	case HostFunctionTypeHostFunctionTypeInvokeContract:
		return "InvokeArgs", true
	case HostFunctionTypeHostFunctionTypeInstallContractCode:
		return "InstallContractCodeArgs", true
	}
	return "", false
}

// HostFunctionInvokeContract wraps an argument vector as an invocation.
func HostFunctionInvokeContract(args ScVec) HostFunction {
	return HostFunction{Type: HostFunctionTypeHostFunctionTypeInvokeContract, InvokeArgs: &args}
}

type LedgerFootprint struct {
	ReadOnly  []LedgerKey
	ReadWrite []LedgerKey
}

type InvokeHostFunctionOp struct {
	Function  HostFunction
	Footprint LedgerFootprint
}

type CryptoKeyType int32

const CryptoKeyTypeKeyTypeEd25519 CryptoKeyType = 0

func (e CryptoKeyType) ValidEnum(v int32) bool {
	return v == 0
}

type MuxedAccount struct {
	Type    CryptoKeyType
	Ed25519 *Uint256
}

func (u MuxedAccount) SwitchFieldName() string {
	return "Type"
}

func (u MuxedAccount) ArmForSwitch(sw int32) (string, bool) {
	if CryptoKeyType(sw) == CryptoKeyTypeKeyTypeEd25519 {
		return "Ed25519", true
	}
	return "", false
}

type OperationType int32

const OperationTypeInvokeHostFunction OperationType = 24

func (e OperationType) ValidEnum(v int32) bool {
	return v == 24
}

type OperationBody struct {
	Type                 OperationType
	InvokeHostFunctionOp *InvokeHostFunctionOp
}

func (u OperationBody) SwitchFieldName() string {
	return "Type"
}

func (u OperationBody) ArmForSwitch(sw int32) (string, bool) {
	if OperationType(sw) == OperationTypeInvokeHostFunction {
		return "InvokeHostFunctionOp", true
	}
	return "", false
}

type Operation struct {
	SourceAccount *MuxedAccount
	Body          OperationBody
}
