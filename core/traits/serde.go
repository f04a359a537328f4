package traits

// JSONName represents smithy.api#jsonName.
type JSONName struct {
	Name string
}

// TraitID identifies the trait.
func (*JSONName) TraitID() string { return "smithy.api#jsonName" }

// Timestamp formats understood by TimestampFormat.
const (
	TimestampFormatDateTime     = "date-time"
	TimestampFormatHTTPDate     = "http-date"
	TimestampFormatEpochSeconds = "epoch-seconds"
)

// TimestampFormat represents smithy.api#timestampFormat.
type TimestampFormat struct {
	Format string
}

// TraitID identifies the trait.
func (*TimestampFormat) TraitID() string { return "smithy.api#timestampFormat" }
