//go:build !cgo || !meos

package backend

// Stubs used when the binary is built without cgo or without the meos tag.

func Initialize(string) error { return ErrNotBuilt }
func Finalize() {}
func Built() bool { return false }
func Version() string { return "" }
func Free(Ptr) {}

func TemporalInfo(Ptr) (TempType, Subtype, Interp) { return 0, 0, 0 }
func TemporalIn(TempType, string) (Ptr, error) { return nil, ErrNotBuilt }
func TemporalOut(TempType, Ptr, int) (string, error) { return "", ErrNotBuilt }
func TPointAsEWKT(Ptr, int) (string, error) { return "", ErrNotBuilt }
func TemporalFromMFJSON(TempType, string) (Ptr, error) { return nil, ErrNotBuilt }
func TemporalAsMFJSON(Ptr, bool, int, int, string) (string, error) { return "", ErrNotBuilt }
func TemporalFromWKB([]byte) (Ptr, error) { return nil, ErrNotBuilt }
func TemporalAsWKB(Ptr, uint8) ([]byte, error) { return nil, ErrNotBuilt }
func TemporalFromHexWKB(string) (Ptr, error) { return nil, ErrNotBuilt }
func TemporalAsHexWKB(Ptr, uint8) (string, error) { return "", ErrNotBuilt }
func TemporalCopy(Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TemporalNumInstants(Ptr) (int, error) { return 0, ErrNotBuilt }
func TemporalStartInstant(Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TemporalEndInstant(Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TemporalInstantN(Ptr, int) (Ptr, error) { return nil, ErrNotBuilt }
func TemporalInstants(Ptr) ([]Ptr, error) { return nil, ErrNotBuilt }
func TInstantTimestamp(Ptr) (int64, error) { return 0, ErrNotBuilt }
func TemporalNumTimestamps(Ptr) (int, error) { return 0, ErrNotBuilt }
func TemporalStartTimestamp(Ptr) (int64, error) { return 0, ErrNotBuilt }
func TemporalEndTimestamp(Ptr) (int64, error) { return 0, ErrNotBuilt }
func TemporalTimestampN(Ptr, int) (int64, bool, error) { return 0, false, ErrNotBuilt }
func TemporalTimestamps(Ptr) ([]int64, error) { return nil, ErrNotBuilt }
func TemporalDuration(Ptr, bool) (Interval, error) { return Interval{}, ErrNotBuilt }
func TemporalTime(Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TemporalTimespan(Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TemporalLowerInc(Ptr) (bool, error) { return false, ErrNotBuilt }
func TemporalUpperInc(Ptr) (bool, error) { return false, ErrNotBuilt }
func TemporalShiftScaleTime(Ptr, *Interval, *Interval) (Ptr, error) { return nil, ErrNotBuilt }
func TemporalSetInterp(Ptr, Interp) (Ptr, error) { return nil, ErrNotBuilt }
func TemporalToInstant(Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TemporalAppendInstant(Ptr, Ptr, float64, *Interval) (Ptr, error) { return nil, ErrNotBuilt }
func TemporalMerge(Ptr, Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TemporalAtTimestamp(Ptr, int64) (Ptr, error) { return nil, ErrNotBuilt }
func TemporalMinusTimestamp(Ptr, int64) (Ptr, error) { return nil, ErrNotBuilt }
func TemporalAtTstzSpan(Ptr, Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TemporalMinusTstzSpan(Ptr, Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TemporalAtValues(Ptr, Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TemporalMinusValues(Ptr, Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TemporalEq(Ptr, Ptr) (bool, error) { return false, ErrNotBuilt }
func TemporalCmp(Ptr, Ptr) (int, error) { return 0, ErrNotBuilt }
func TemporalTEq(Ptr, Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TemporalTNe(Ptr, Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func EverEqBool(Ptr, bool) (bool, error) { return false, ErrNotBuilt }
func AlwaysEqBool(Ptr, bool) (bool, error) { return false, ErrNotBuilt }
func EverEqInt(Ptr, int) (bool, error) { return false, ErrNotBuilt }
func AlwaysEqInt(Ptr, int) (bool, error) { return false, ErrNotBuilt }
func EverEqFloat(Ptr, float64) (bool, error) { return false, ErrNotBuilt }
func AlwaysEqFloat(Ptr, float64) (bool, error) { return false, ErrNotBuilt }
func TBoolValue(Ptr, ValueSel) (bool, error) { return false, ErrNotBuilt }
func TIntValue(Ptr, ValueSel) (int, error) { return 0, ErrNotBuilt }
func TFloatValue(Ptr, ValueSel) (float64, error) { return 0, ErrNotBuilt }
func TTextValue(Ptr, ValueSel) (string, error) { return "", ErrNotBuilt }
func TPointValue(Ptr, ValueSel) (Ptr, error) { return nil, ErrNotBuilt }
func TBoolValueAt(Ptr, int64, bool) (bool, bool, error) { return false, false, ErrNotBuilt }
func TIntValueAt(Ptr, int64, bool) (int, bool, error) { return 0, false, ErrNotBuilt }
func TFloatValueAt(Ptr, int64, bool) (float64, bool, error) { return 0, false, ErrNotBuilt }
func TTextValueAt(Ptr, int64, bool) (string, bool, error) { return "", false, ErrNotBuilt }
func TPointValueAt(Ptr, int64, bool) (Ptr, bool, error) { return nil, false, ErrNotBuilt }
func TBoolValues(Ptr) ([]bool, error) { return nil, ErrNotBuilt }
func TIntValues(Ptr) ([]int, error) { return nil, ErrNotBuilt }
func TFloatValues(Ptr) ([]float64, error) { return nil, ErrNotBuilt }
func TTextValues(Ptr) ([]string, error) { return nil, ErrNotBuilt }
func TNumberIntegral(Ptr) (float64, error) { return 0, ErrNotBuilt }
func TNumberTwavg(Ptr) (float64, error) { return 0, ErrNotBuilt }
func TNumberToTBox(Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TNumberValueSpans(Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TNumberArith(Ptr, Ptr, Arith) (Ptr, error) { return nil, ErrNotBuilt }
func TNumberAbs(Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TNumberDeltaValue(Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TFloatShiftScaleValue(Ptr, float64, float64, bool, bool) (Ptr, error) { return nil, ErrNotBuilt }
func TIntShiftScaleValue(Ptr, int, int, bool, bool) (Ptr, error) { return nil, ErrNotBuilt }
func NadTFloatTFloat(Ptr, Ptr) (float64, bool, error) { return 0, false, ErrNotBuilt }
func NadTIntTInt(Ptr, Ptr) (int, bool, error) { return 0, false, ErrNotBuilt }
func DistanceTNumberTNumber(Ptr, Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TBoolNot(Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TBoolAnd(Ptr, Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TBoolOr(Ptr, Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TBoolWhenTrue(Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TTextUpper(Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TTextLower(Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TTextConcat(Ptr, Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TPointLength(Ptr) (float64, error) { return 0, ErrNotBuilt }
func TPointCumulativeLength(Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TPointSpeed(Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TPointTrajectory(Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TPointSRID(Ptr) (int, error) { return 0, ErrNotBuilt }
func TPointSetSRID(Ptr, int) (Ptr, error) { return nil, ErrNotBuilt }
func TPointToSTBox(Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TPointDirection(Ptr) (float64, bool, error) { return 0, false, ErrNotBuilt }
func TPointTWCentroid(Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func NadTPointTPoint(Ptr, Ptr) (float64, bool, error) { return 0, false, ErrNotBuilt }
func NadTPointGeo(Ptr, Ptr) (float64, bool, error) { return 0, false, ErrNotBuilt }
func NaiTPointTPoint(Ptr, Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func DistanceTPointTPoint(Ptr, Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func DistanceTPointPoint(Ptr, Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func ShortestLineTPointTPoint(Ptr, Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TDWithinTPointTPoint(Ptr, Ptr, float64) (Ptr, error) { return nil, ErrNotBuilt }
func TIntersectsTPointGeo(Ptr, Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func EIntersectsTPointGeo(Ptr, Ptr) (bool, error) { return false, ErrNotBuilt }
func TPointAtGeom(Ptr, Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TPointMinusGeom(Ptr, Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TPointAtValue(Ptr, Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TPointTransform(Ptr, int) (Ptr, error) { return nil, ErrNotBuilt }
func TPointRound(Ptr, int) (Ptr, error) { return nil, ErrNotBuilt }
func TContainsGeoTPoint(Ptr, Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TDisjointTPointGeo(Ptr, Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TTouchesTPointGeo(Ptr, Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TDWithinTPointGeo(Ptr, Ptr, float64) (Ptr, error) { return nil, ErrNotBuilt }
func TBoolInstMake(bool, int64) (Ptr, error) { return nil, ErrNotBuilt }
func TIntInstMake(int, int64) (Ptr, error) { return nil, ErrNotBuilt }
func TFloatInstMake(float64, int64) (Ptr, error) { return nil, ErrNotBuilt }
func TTextInstMake(string, int64) (Ptr, error) { return nil, ErrNotBuilt }
func TPointInstMake(Ptr, int64) (Ptr, error) { return nil, ErrNotBuilt }
func SeqFromBaseTstzSpan(BaseValue, Ptr, Interp) (Ptr, error) { return nil, ErrNotBuilt }
func SeqSetFromBaseTstzSpanSet(BaseValue, Ptr, Interp) (Ptr, error) { return nil, ErrNotBuilt }
func TSequenceMakeFree([]Ptr, bool, bool, Interp, bool) (Ptr, error) { return nil, ErrNotBuilt }
func TSequenceMake([]Ptr, bool, bool, Interp, bool) (Ptr, error) { return nil, ErrNotBuilt }
func TSequenceSetMake([]Ptr, bool) (Ptr, error) { return nil, ErrNotBuilt }
func FloatSetMake([]float64) (Ptr, error) { return nil, ErrNotBuilt }
func IntSetMake([]int) (Ptr, error) { return nil, ErrNotBuilt }
func TstzSetMake([]int64) (Ptr, error) { return nil, ErrNotBuilt }
func DateSetMake([]int32) (Ptr, error) { return nil, ErrNotBuilt }
func SetOut(SpanType, Ptr, int) (string, error) { return "", ErrNotBuilt }
func SetNumValues(Ptr) (int, error) { return 0, ErrNotBuilt }
func SpanIn(SpanType, string) (Ptr, error) { return nil, ErrNotBuilt }
func SpanOut(SpanType, Ptr, int) (string, error) { return "", ErrNotBuilt }
func IntSpanMake(int, int, bool, bool) (Ptr, error) { return nil, ErrNotBuilt }
func FloatSpanMake(float64, float64, bool, bool) (Ptr, error) { return nil, ErrNotBuilt }
func TstzSpanMake(int64, int64, bool, bool) (Ptr, error) { return nil, ErrNotBuilt }
func IntSpanBounds(Ptr) (int, int, error) { return 0, 0, ErrNotBuilt }
func FloatSpanBounds(Ptr) (float64, float64, error) { return 0, 0, ErrNotBuilt }
func TstzSpanBounds(Ptr) (int64, int64, error) { return 0, 0, ErrNotBuilt }
func SpanInclusive(Ptr) (bool, bool, error) { return false, false, ErrNotBuilt }
func SpanTest(Ptr, Ptr, SpanPred) (bool, error) { return false, ErrNotBuilt }
func SpanIntersection(Ptr, Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func SpanUnion(Ptr, Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func SpanToSpanSet(Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func DateSpanMake(int32, int32, bool, bool) (Ptr, error) { return nil, ErrNotBuilt }
func DateSpanBounds(Ptr) (int32, int32, error) { return 0, 0, ErrNotBuilt }
func ContainsSpanDate(Ptr, int32) (bool, error) { return false, ErrNotBuilt }
func DateSpanToTstzSpan(Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func DateSpanSetToTstzSpanSet(Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func SpanHash(Ptr) (uint32, error) { return 0, ErrNotBuilt }
func SpanPosition(Ptr, Ptr, SpanPos) (bool, error) { return false, ErrNotBuilt }
func TstzSpanDuration(Ptr) (Interval, error) { return Interval{}, ErrNotBuilt }
func TstzSpanShiftScale(Ptr, *Interval, *Interval) (Ptr, error) { return nil, ErrNotBuilt }
func SpanSetIn(SpanType, string) (Ptr, error) { return nil, ErrNotBuilt }
func SpanSetOut(SpanType, Ptr, int) (string, error) { return "", ErrNotBuilt }
func SpanSetNumSpans(Ptr) (int, error) { return 0, ErrNotBuilt }
func SpanSetSpanN(Ptr, int) (Ptr, error) { return nil, ErrNotBuilt }
func SpanSetStartSpan(Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func SpanSetEndSpan(Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func SpanSetSpan(Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func SpanSetEq(Ptr, Ptr) (bool, error) { return false, ErrNotBuilt }
func TstzSpanSetDuration(Ptr, bool) (Interval, error) { return Interval{}, ErrNotBuilt }
func STBoxIn(string) (Ptr, error) { return nil, ErrNotBuilt }
func STBoxOut(Ptr, int) (string, error) { return "", ErrNotBuilt }
func STBoxEq(Ptr, Ptr) (bool, error) { return false, ErrNotBuilt }
func STBoxCoord(Ptr, BoxCoord) (float64, bool, error) { return 0, false, ErrNotBuilt }
func STBoxTime(Ptr, bool) (int64, bool, error) { return 0, false, ErrNotBuilt }
func STBoxDims(Ptr) (bool, bool, error) { return false, false, ErrNotBuilt }
func STBoxExpandSpace(Ptr, float64) (Ptr, error) { return nil, ErrNotBuilt }
func STBoxToTstzSpan(Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func STBoxUnion(Ptr, Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func STBoxIntersection(Ptr, Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func NadSTBoxSTBox(Ptr, Ptr) (float64, bool, error) { return 0, false, ErrNotBuilt }
func TBoxIn(string) (Ptr, error) { return nil, ErrNotBuilt }
func TBoxOut(Ptr, int) (string, error) { return "", ErrNotBuilt }
func TBoxEq(Ptr, Ptr) (bool, error) { return false, ErrNotBuilt }
func TBoxValue(Ptr, bool) (float64, bool, error) { return 0, false, ErrNotBuilt }
func TBoxTime(Ptr, bool) (int64, bool, error) { return 0, false, ErrNotBuilt }
func TBoxToFloatSpan(Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func TBoxToTstzSpan(Ptr) (Ptr, error) { return nil, ErrNotBuilt }
func GeoIn(string, bool) (Ptr, error) { return nil, ErrNotBuilt }
func GeoFromEWKB([]byte, int) (Ptr, error) { return nil, ErrNotBuilt }
func GeoAsEWKB(Ptr, string) ([]byte, error) { return nil, ErrNotBuilt }
func GeoAsText(Ptr, int, bool) (string, error) { return "", ErrNotBuilt }
func GeoSame(Ptr, Ptr) (bool, error) { return false, ErrNotBuilt }
