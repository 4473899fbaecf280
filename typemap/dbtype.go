package typemap

import "mysql-typemap/primitive"

//go:generate go tool stringer -type=DbType -trimprefix=DbType -output=dbtype_string.go

// DbType is the dialect neutral classification of a column type.
type DbType int

const (
	_ DbType = iota

	DbTypeBoolean
	DbTypeSByte
	DbTypeByte
	DbTypeInt16
	DbTypeUInt16
	DbTypeInt32
	DbTypeUInt32
	DbTypeInt64
	DbTypeUInt64
	DbTypeDecimal
	DbTypeDouble
	DbTypeSingle
	DbTypeAnsiString
	DbTypeAnsiStringFixedLength
	DbTypeString
	DbTypeBinary
	DbTypeDateTime
	DbTypeDate
	DbTypeTime
	DbTypeGuid
)

// Family returns the semantic category shared with primitive kinds.
func (t DbType) Family() primitive.Family {
	switch t {
	case DbTypeBoolean:
		return primitive.FamilyBoolean
	case DbTypeSByte, DbTypeByte, DbTypeInt16, DbTypeUInt16,
		DbTypeInt32, DbTypeUInt32, DbTypeInt64, DbTypeUInt64:
		return primitive.FamilyInteger
	case DbTypeDouble, DbTypeSingle:
		return primitive.FamilyFloat
	case DbTypeDecimal:
		return primitive.FamilyDecimal
	case DbTypeAnsiString, DbTypeAnsiStringFixedLength, DbTypeString:
		return primitive.FamilyText
	case DbTypeBinary:
		return primitive.FamilyBinary
	case DbTypeDateTime, DbTypeDate, DbTypeTime:
		return primitive.FamilyTemporal
	case DbTypeGuid:
		return primitive.FamilyIdentifier
	default:
		return primitive.FamilyNone
	}
}

func (t DbType) IsSigned() bool {
	switch t {
	default:
		return false
	case DbTypeSByte, DbTypeInt16, DbTypeInt32, DbTypeInt64:
		return true
	}
}

func (t DbType) IsUnsigned() bool {
	switch t {
	default:
		return false
	case DbTypeByte, DbTypeUInt16, DbTypeUInt32, DbTypeUInt64:
		return true
	}
}
