package ecs

import (
	"reflect"
	"sort"
)

// EntityID 是实体的唯一标识符
type EntityID uint64

// EntityObserver 接收实体进入/离开某个组件组合（aspect）的通知
//
// Inserted 在实体首次同时拥有全部关注组件时调用，
// Removed 在实体失去任一关注组件或被清理时调用。
type EntityObserver interface {
	Inserted(id EntityID)
	Removed(id EntityID)
}

// aspectSubscription 记录一个观察者关注的组件组合及当前匹配的实体
type aspectSubscription struct {
	types    []reflect.Type
	observer EntityObserver
	members  map[EntityID]bool
}

// EntityManager 管理所有实体和组件
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]interface{}
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
	// aspect 订阅列表，按注册顺序通知
	subscriptions []*aspectSubscription
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// DestroyEntity 标记实体待删除(不立即删除)
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// AddComponent 为实体添加组件
// 如果实体因此满足某个 aspect，对应观察者收到 Inserted 通知
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	componentType := reflect.TypeOf(component)
	compMap, exists := em.components[id]
	if !exists {
		return
	}
	compMap[componentType] = component
	em.refreshSubscriptions(id)
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	compMap, exists := em.components[id]
	if !exists {
		return
	}
	delete(compMap, componentType)
	em.refreshSubscriptions(id)
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// RemoveMarkedEntities 清理所有标记删除的实体
// 被清理的实体会先通知所有匹配的观察者（Removed）
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		if _, exists := em.components[id]; !exists {
			continue // 重复标记
		}
		for _, sub := range em.subscriptions {
			if sub.members[id] {
				delete(sub.members, id)
				sub.observer.Removed(id)
			}
		}
		delete(em.components, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
// 参数: componentTypes ...reflect.Type - 需要的组件类型列表
// 返回: []EntityID - 满足条件的实体ID列表（按 ID 升序，即创建顺序）
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		if matchesAll(compMap, componentTypes) {
			result = append(result, id)
		}
	}

	sortEntityIDs(result)
	return result
}

// Observe 注册一个 aspect 观察者
// 已经满足条件的实体会按 ID 顺序立即收到 Inserted 通知
func (em *EntityManager) Observe(observer EntityObserver, componentTypes ...reflect.Type) {
	sub := &aspectSubscription{
		types:    componentTypes,
		observer: observer,
		members:  make(map[EntityID]bool),
	}
	em.subscriptions = append(em.subscriptions, sub)

	for _, id := range em.GetEntitiesWith(componentTypes...) {
		sub.members[id] = true
		observer.Inserted(id)
	}
}

// refreshSubscriptions 重新计算实体与各 aspect 的匹配关系并发出通知
func (em *EntityManager) refreshSubscriptions(id EntityID) {
	compMap := em.components[id]
	for _, sub := range em.subscriptions {
		matches := matchesAll(compMap, sub.types)
		switch {
		case matches && !sub.members[id]:
			sub.members[id] = true
			sub.observer.Inserted(id)
		case !matches && sub.members[id]:
			delete(sub.members, id)
			sub.observer.Removed(id)
		}
	}
}

func matchesAll(compMap map[reflect.Type]interface{}, componentTypes []reflect.Type) bool {
	for _, ct := range componentTypes {
		if _, found := compMap[ct]; !found {
			return false
		}
	}
	return true
}

func sortEntityIDs(ids []EntityID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
