// HTTP 层冒烟测试
// 用桩 Service 驱动完整的 gin 引擎，验证路由、参数绑定和统一响应格式
package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"albion_raid_server/internal/dto/request"
	"albion_raid_server/internal/dto/respond"
	"albion_raid_server/internal/handler"
	"albion_raid_server/internal/http_server"
	"albion_raid_server/internal/service"
	"albion_raid_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

type stubRaidService struct{}

func (s stubRaidService) CreateRaid(req request.CreateRaidRequest) (*respond.RaidRespond, error) {
	return &respond.RaidRespond{RaidId: "R_TEST", Title: req.Title}, nil
}
func (s stubRaidService) GetRaidInfo(raidId string, withSlots bool) (*respond.RaidRespond, error) {
	if raidId == "R_MISSING" {
		return nil, errorx.ErrRaidNotFound
	}
	return &respond.RaidRespond{RaidId: raidId}, nil
}
func (s stubRaidService) GetRaidList(req request.GetRaidListRequest) ([]respond.RaidRespond, error) {
	return []respond.RaidRespond{}, nil
}
func (s stubRaidService) UpdateRaid(req request.UpdateRaidRequest) (*respond.RaidRespond, error) {
	return &respond.RaidRespond{RaidId: req.RaidId}, nil
}
func (s stubRaidService) AdvanceRaidStatus(req request.AdvanceRaidStatusRequest) (*respond.RaidRespond, error) {
	return &respond.RaidRespond{RaidId: req.RaidId, Status: req.Status}, nil
}
func (s stubRaidService) DeleteRaid(raidId string) error { return nil }
func (s stubRaidService) CreateSlot(req request.CreateSlotRequest) (*respond.RaidRespond, error) {
	return &respond.RaidRespond{RaidId: req.RaidId}, nil
}
func (s stubRaidService) UpdateSlot(req request.UpdateSlotRequest) (*respond.RaidRespond, error) {
	return &respond.RaidRespond{RaidId: req.RaidId}, nil
}
func (s stubRaidService) DeleteSlot(req request.DeleteSlotRequest) (*respond.RaidRespond, error) {
	return &respond.RaidRespond{RaidId: req.RaidId}, nil
}
func (s stubRaidService) ReorderSlots(req request.ReorderSlotsRequest) (*respond.RaidRespond, error) {
	return &respond.RaidRespond{RaidId: req.RaidId}, nil
}

type stubCommunityService struct{}

func (s stubCommunityService) CreateCommunity(req request.CreateCommunityRequest) (*respond.CommunityRespond, error) {
	return &respond.CommunityRespond{CommunityId: "C_TEST", Name: req.Name}, nil
}
func (s stubCommunityService) GetCommunityInfo(communityId string) (*respond.CommunityRespond, error) {
	return &respond.CommunityRespond{CommunityId: communityId}, nil
}
func (s stubCommunityService) JoinCommunity(req request.JoinCommunityRequest) error { return nil }

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := &service.Services{
		Raid:      stubRaidService{},
		Community: stubCommunityService{},
		Gate:      service.AllowAllGate{},
	}
	return http_server.Init(handler.NewHandlers(svc))
}

type apiResponse struct {
	Code int             `json:"code"`
	Msg  any             `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, engine *gin.Engine, method, path string, body any) apiResponse {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("%s %s HTTP %d", method, path, w.Code)
	}
	var rsp apiResponse
	if err := json.Unmarshal(w.Body.Bytes(), &rsp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return rsp
}

func TestCreateRaidRoute(t *testing.T) {
	engine := newTestEngine()
	rsp := doRequest(t, engine, http.MethodPost, "/api/raid/createRaid", request.CreateRaidRequest{
		Title:       "Roads ganking",
		ContentType: "ROADS_OF_AVALON",
		Time:        time.Now().Add(time.Hour),
		CommunityId: "C_TEST",
	})
	if rsp.Code != errorx.CodeSuccess {
		t.Fatalf("code = %d, want success", rsp.Code)
	}
	var raid respond.RaidRespond
	if err := json.Unmarshal(rsp.Data, &raid); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if raid.RaidId != "R_TEST" || raid.Title != "Roads ganking" {
		t.Errorf("data = %+v", raid)
	}
}

func TestCreateRaidRouteMissingFields(t *testing.T) {
	engine := newTestEngine()
	// 缺少必填字段，参数绑定失败
	rsp := doRequest(t, engine, http.MethodPost, "/api/raid/createRaid", map[string]string{"title": "x"})
	if rsp.Code != errorx.ErrInvalidParam.Code {
		t.Errorf("code = %d, want CodeInvalidParam", rsp.Code)
	}
}

func TestGetRaidInfoRoute(t *testing.T) {
	engine := newTestEngine()

	rsp := doRequest(t, engine, http.MethodGet, "/api/raid/getRaidInfo?raidId=R_1&withSlots=true", nil)
	if rsp.Code != errorx.CodeSuccess {
		t.Errorf("code = %d, want success", rsp.Code)
	}

	// 业务错误透传错误码
	rsp = doRequest(t, engine, http.MethodGet, "/api/raid/getRaidInfo?raidId=R_MISSING", nil)
	if rsp.Code != errorx.CodeNotFound {
		t.Errorf("code = %d, want CodeNotFound", rsp.Code)
	}

	// 缺少 raidId
	rsp = doRequest(t, engine, http.MethodGet, "/api/raid/getRaidInfo", nil)
	if rsp.Code != errorx.ErrInvalidParam.Code {
		t.Errorf("code = %d, want CodeInvalidParam", rsp.Code)
	}
}

func TestSlotRoutes(t *testing.T) {
	engine := newTestEngine()

	rsp := doRequest(t, engine, http.MethodPost, "/api/raid/slot/createSlot", request.CreateSlotRequest{
		RaidId: "R_1", Name: "Tank",
	})
	if rsp.Code != errorx.CodeSuccess {
		t.Errorf("createSlot code = %d", rsp.Code)
	}

	rsp = doRequest(t, engine, http.MethodPost, "/api/raid/slot/reorderSlots", request.ReorderSlotsRequest{
		RaidId: "R_1", SlotIds: []string{"S_1", "S_2"},
	})
	if rsp.Code != errorx.CodeSuccess {
		t.Errorf("reorderSlots code = %d", rsp.Code)
	}

	// 空 slotIds 被 binding 拒绝
	rsp = doRequest(t, engine, http.MethodPost, "/api/raid/slot/reorderSlots", map[string]any{
		"raidId": "R_1", "slotIds": []string{},
	})
	if rsp.Code != errorx.ErrInvalidParam.Code {
		t.Errorf("空 slotIds code = %d, want CodeInvalidParam", rsp.Code)
	}
}

func TestContentTypeListRoute(t *testing.T) {
	engine := newTestEngine()
	rsp := doRequest(t, engine, http.MethodGet, "/api/raid/getContentTypeList", nil)
	if rsp.Code != errorx.CodeSuccess {
		t.Fatalf("code = %d, want success", rsp.Code)
	}
	var list []respond.ContentTypeRespond
	if err := json.Unmarshal(rsp.Data, &list); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if len(list) == 0 {
		t.Errorf("内容类型列表不应为空")
	}
	for _, ct := range list {
		if ct.Key == "CRYSTAL_LEAGUE_LEGACY" {
			t.Errorf("下线类型不应出现在列表")
		}
	}
}

func TestCommunityRoutes(t *testing.T) {
	engine := newTestEngine()

	rsp := doRequest(t, engine, http.MethodPost, "/api/community/createCommunity", request.CreateCommunityRequest{
		Name: "Black Hand", OwnerId: "P_OWNER",
	})
	if rsp.Code != errorx.CodeSuccess {
		t.Errorf("createCommunity code = %d", rsp.Code)
	}

	rsp = doRequest(t, engine, http.MethodGet, "/api/community/getCommunityInfo?communityId=C_TEST", nil)
	if rsp.Code != errorx.CodeSuccess {
		t.Errorf("getCommunityInfo code = %d", rsp.Code)
	}

	rsp = doRequest(t, engine, http.MethodGet, "/api/community/getCommunityInfo", nil)
	if rsp.Code != errorx.ErrInvalidParam.Code {
		t.Errorf("缺 communityId code = %d, want CodeInvalidParam", rsp.Code)
	}
}
