package app

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"telemview/app/csvdata"
	"telemview/app/fileloader"
	"telemview/app/settings"
)

const sampleLog = "time index;Truma_n_AmcuDebugData::operationTime;Truma_n_AmcuDebugData::supplyVoltage;zero\n" +
	"1699972450.123;12.5;24.1;0\n" +
	"1699972452.000;13.0;24.1;0\n" +
	"1699972510.900;13.5;24.1;0\n"

func openSample(t *testing.T) (*Service, *Session) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "TelemetryUI_log.csv")
	if err := os.WriteFile(path, []byte(sampleLog), 0644); err != nil {
		t.Fatalf("Failed to write log: %v", err)
	}

	svc := NewService()
	info, err := svc.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	session, err := svc.Session(info.ID)
	if err != nil {
		t.Fatalf("Session failed: %v", err)
	}
	return svc, session
}

func TestOpenRegistersSession(t *testing.T) {
	svc, session := openSample(t)

	info := session.Info()
	if info.Rows != 3 || info.Columns != 4 {
		t.Errorf("Info = %+v, want 3 rows x 4 columns", info)
	}
	if info.Fingerprint == "" {
		t.Error("Expected a fingerprint")
	}

	sessions := svc.Sessions()
	if len(sessions) != 1 || sessions[0].ID != info.ID {
		t.Errorf("Sessions = %+v, want the open session", sessions)
	}
}

func TestOpenFailureLeavesNoSession(t *testing.T) {
	svc := NewService()

	_, err := svc.Open(filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, fileloader.ErrNotFound) {
		t.Fatalf("Open = %v, want ErrNotFound", err)
	}
	if len(svc.Sessions()) != 0 {
		t.Error("Failed open left a session behind")
	}
}

func TestClose(t *testing.T) {
	svc, session := openSample(t)

	if err := svc.Close(session.Info().ID); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := svc.Close(session.Info().ID); err == nil {
		t.Error("Second close succeeded, want error")
	}
	if _, err := svc.Session(session.Info().ID); err == nil {
		t.Error("Closed session still resolvable")
	}
}

func TestQuerySurface(t *testing.T) {
	_, session := openSample(t)

	wantHeaders := []string{"time index", "Truma_n_AmcuDebugData::operationTime", "Truma_n_AmcuDebugData::supplyVoltage", "zero"}
	if got := session.HeaderList(); !reflect.DeepEqual(got, wantHeaders) {
		t.Errorf("HeaderList = %v, want %v", got, wantHeaders)
	}
	if got := session.IndexList(); !reflect.DeepEqual(got, []int{0, 1, 2, 3}) {
		t.Errorf("IndexList = %v", got)
	}

	mapping := session.HeadersMapping()
	amcu := mapping.Lookup("AmcuDebugData")
	if amcu == nil || len(amcu.Leaves) != 2 || amcu.Leaves[0].Name != "operationTime" {
		t.Errorf("HeadersMapping = %+v, want AmcuDebugData group", mapping)
	}
	ungrouped := mapping.Ungrouped()
	if ungrouped == nil || ungrouped.Leaves[0].Name != "time index" {
		t.Errorf("Ungrouped bucket = %+v", ungrouped)
	}

	if got := session.ConstDataIndexList(); !reflect.DeepEqual(got, []int{2, 3}) {
		t.Errorf("ConstDataIndexList = %v, want [2 3]", got)
	}
	if got := session.ConstZeroDataIndexList(); !reflect.DeepEqual(got, []int{3}) {
		t.Errorf("ConstZeroDataIndexList = %v, want [3]", got)
	}
	if got := session.VaryingDataIndexList(); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Errorf("VaryingDataIndexList = %v, want [0 1]", got)
	}
}

func TestTimeDataList(t *testing.T) {
	_, session := openSample(t)

	series, err := session.TimeDataList()
	if err != nil {
		t.Fatalf("TimeDataList failed: %v", err)
	}
	want := []float64{0.0, 1.877, 60.777}
	if !reflect.DeepEqual(series, want) {
		t.Errorf("TimeDataList = %v, want %v", series, want)
	}
}

func TestTimeDataListHeadersOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "headers_only.csv")
	if err := os.WriteFile(path, []byte("time index;a\n"), 0644); err != nil {
		t.Fatalf("Failed to write log: %v", err)
	}

	svc := NewService()
	info, err := svc.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	session, err := svc.Session(info.ID)
	if err != nil {
		t.Fatalf("Session failed: %v", err)
	}

	series, err := session.TimeDataList()
	if err != nil {
		t.Fatalf("TimeDataList failed: %v", err)
	}
	if len(series) != 0 {
		t.Errorf("TimeDataList = %v, want an empty series", series)
	}
}

func TestGetDataSelectorContract(t *testing.T) {
	_, session := openSample(t)

	byIndex, err := session.GetData(1, nil)
	if err != nil {
		t.Fatalf("GetData(index) failed: %v", err)
	}
	byHeader, err := session.GetData(nil, "Truma_n_AmcuDebugData::operationTime")
	if err != nil {
		t.Fatalf("GetData(header) failed: %v", err)
	}
	if !reflect.DeepEqual(byIndex, byHeader) {
		t.Errorf("by-index %v != by-header %v", byIndex, byHeader)
	}

	if _, err := session.GetData(1, "zero"); !errors.Is(err, csvdata.ErrAmbiguousSelector) {
		t.Errorf("Both slots = %v, want ErrAmbiguousSelector", err)
	}
	if _, err := session.GetData(nil, nil); !errors.Is(err, csvdata.ErrMissingSelector) {
		t.Errorf("No slots = %v, want ErrMissingSelector", err)
	}
	if _, err := session.GetData("zero", nil); !errors.Is(err, csvdata.ErrTypeMismatch) {
		t.Errorf("String index = %v, want ErrTypeMismatch", err)
	}
	if _, err := session.GetData(nil, 3); !errors.Is(err, csvdata.ErrTypeMismatch) {
		t.Errorf("Int header = %v, want ErrTypeMismatch", err)
	}
	if _, err := session.GetData(99, nil); !errors.Is(err, csvdata.ErrIndexOutOfRange) {
		t.Errorf("Out of range = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := session.GetData(nil, "bogus"); !errors.Is(err, csvdata.ErrHeaderNotFound) {
		t.Errorf("Unknown header = %v, want ErrHeaderNotFound", err)
	}
}

func TestGetDataExtrema(t *testing.T) {
	_, session := openSample(t)

	varying, err := session.GetDataExtrema(1, nil)
	if err != nil {
		t.Fatalf("GetDataExtrema failed: %v", err)
	}
	if varying != (ExtremaPair{Min: 12.45, Max: 13.55}) {
		t.Errorf("Extrema = %+v, want {12.45 13.55}", varying)
	}

	constant, err := session.GetDataExtrema(nil, "Truma_n_AmcuDebugData::supplyVoltage")
	if err != nil {
		t.Fatalf("GetDataExtrema failed: %v", err)
	}
	if constant != (ExtremaPair{Min: 23.1, Max: 25.1}) {
		t.Errorf("Constant extrema = %+v, want {23.1 25.1}", constant)
	}
}

func TestGetUniqueColorCode(t *testing.T) {
	_, session := openSample(t)

	code, err := session.GetUniqueColorCode(1)
	if err != nil {
		t.Fatalf("GetUniqueColorCode failed: %v", err)
	}
	if code != "#f43d82" {
		t.Errorf("ColorCode = %s, want #f43d82", code)
	}

	if _, err := session.GetUniqueColorCode(4); !errors.Is(err, csvdata.ErrIndexOutOfRange) {
		t.Errorf("Out of range = %v, want ErrIndexOutOfRange", err)
	}
}

func TestOpenWithProfileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comma.csv")
	content := "timestamp,value\n1699972450.123,1\n1699972452.000,2\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write log: %v", err)
	}

	profile := settings.DefaultProfile()
	profile.Delimiter = ","
	profile.TimeColumn = "timestamp"

	svc := NewService()
	info, err := svc.OpenWithProfile(path, profile)
	if err != nil {
		t.Fatalf("OpenWithProfile failed: %v", err)
	}
	session, _ := svc.Session(info.ID)

	series, err := session.TimeDataList()
	if err != nil {
		t.Fatalf("TimeDataList failed: %v", err)
	}
	if !reflect.DeepEqual(series, []float64{0.0, 1.877}) {
		t.Errorf("TimeDataList = %v, want [0 1.877]", series)
	}
}
