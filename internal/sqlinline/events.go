package sqlinline

const QInsertEvent = `--sql 1c8e5f2b-a943-4d7e-b1a6-9e3f4c2d8b57
insert into events(id, event_type, fund_id, amount, country, created_at)
values ($1::uuid, $2::text, $3::bigint, $4::bigint, nullif($5::text, ''), now());
`

const QListEvents = `--sql e37b9a61-2f5c-4e8d-a7b4-6c1d9f8e2a35
select id, event_type, fund_id, amount, coalesce(country, ''), created_at
from events
order by created_at desc
limit $1::int;
`
